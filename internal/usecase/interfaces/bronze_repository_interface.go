package interfaces

import (
	"context"

	"warehouse_silver/internal/domain/entities"
)

//go:generate mockgen -source=bronze_repository_interface.go -destination=mocks/mock_bronze_repository.go -package=mock_interfaces

// IBronzeRepository abstracts bulk reads of the raw bronze tables.
//
// Each method reads the full collection for one table per run; there is
// no incremental or cursor-based access at this layer.
type IBronzeRepository interface {
	ReadCustomers(ctx context.Context) ([]entities.RawCustomer, error)
	ReadProducts(ctx context.Context) ([]entities.RawProduct, error)
	ReadSales(ctx context.Context) ([]entities.RawSale, error)
	ReadDemographics(ctx context.Context) ([]entities.RawDemographic, error)
	ReadLocations(ctx context.Context) ([]entities.RawLocation, error)
	ReadCategories(ctx context.Context) ([]entities.RawCategory, error)
}
