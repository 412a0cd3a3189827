package interfaces

import (
	"context"

	"warehouse_silver/internal/domain/entities"
)

//go:generate mockgen -source=silver_repository_interface.go -destination=mocks/mock_silver_repository.go -package=mock_interfaces

// ISilverRepository abstracts bulk writes of the cleansed silver tables.
//
// Reset clears the whole silver destination prefix; it runs once before
// any table is written. Each Write stages the full replacement
// collection for its table under a run-scoped location and reports
// where it landed, so the catalog pointer can be swapped afterwards.
type ISilverRepository interface {
	Reset(ctx context.Context) error
	WriteCustomers(ctx context.Context, runID string, rows []entities.CustomerRecord) (entities.TableResult, error)
	WriteProducts(ctx context.Context, runID string, rows []entities.ProductRecord) (entities.TableResult, error)
	WriteSales(ctx context.Context, runID string, rows []entities.SalesTransaction) (entities.TableResult, error)
	WriteDemographics(ctx context.Context, runID string, rows []entities.CustomerDemographic) (entities.TableResult, error)
	WriteLocations(ctx context.Context, runID string, rows []entities.CustomerLocation) (entities.TableResult, error)
	WriteCategories(ctx context.Context, runID string, rows []entities.ProductCategory) (entities.TableResult, error)
}
