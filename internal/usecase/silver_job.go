package usecase

import (
	"context"
	"fmt"
	"time"

	"warehouse_silver/internal/domain/entities"
	"warehouse_silver/internal/usecase/interfaces"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ISilverJob runs one full bronze-to-silver cleansing pass.
type ISilverJob interface {
	Run(ctx context.Context) (entities.RunRecord, error)
}

// SilverJob orchestrates the run: hard-reset the destination, then per
// table read bronze, resolve, stage the replacement collection, swap
// the catalog pointer, and append the outcome to the run ledger.
//
// Failures are fatal; a mid-run failure leaves earlier tables updated
// and later ones missing. Retries belong to the orchestration
// environment, not here.
type SilverJob struct {
	bronze  interfaces.IBronzeRepository
	silver  interfaces.ISilverRepository
	catalog interfaces.ICatalogRepository
	ledger  interfaces.IRunLedgerRepository

	customers    CustomerResolver
	products     ProductResolver
	sales        SalesReconciler
	demographics DemographicNormalizer
	locations    LocationNormalizer
	categories   CategoryNormalizer
}

var _ ISilverJob = (*SilverJob)(nil)

func NewSilverJob(
	bronze interfaces.IBronzeRepository,
	silver interfaces.ISilverRepository,
	catalog interfaces.ICatalogRepository,
	ledger interfaces.IRunLedgerRepository,
) *SilverJob {
	return &SilverJob{
		bronze:  bronze,
		silver:  silver,
		catalog: catalog,
		ledger:  ledger,
	}
}

func (j *SilverJob) Run(ctx context.Context) (entities.RunRecord, error) {
	run := entities.RunRecord{
		ID:        uuid.NewString(),
		Status:    entities.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := j.ledger.Save(ctx, run); err != nil {
		return run, fmt.Errorf("open run ledger record: %w", err)
	}
	log.Info("silver run started", "run_id", run.ID)

	if err := j.silver.Reset(ctx); err != nil {
		return j.fail(ctx, run, fmt.Errorf("reset silver destination: %w", err))
	}
	if err := j.catalog.DropTables(ctx); err != nil {
		return j.fail(ctx, run, fmt.Errorf("drop silver catalog tables: %w", err))
	}

	steps := []struct {
		table string
		run   func(context.Context, string) (entities.TableResult, error)
	}{
		{"cust_info", j.runCustomers},
		{"prd_info", j.runProducts},
		{"sales_details", j.runSales},
		{"cust_az12", j.runDemographics},
		{"loc_a101", j.runLocations},
		{"px_cat_g1v2", j.runCategories},
	}
	for _, step := range steps {
		res, err := step.run(ctx, run.ID)
		if err != nil {
			return j.fail(ctx, run, fmt.Errorf("%s: %w", step.table, err))
		}
		if err := j.catalog.RegisterTable(ctx, res.Table, res.Location); err != nil {
			return j.fail(ctx, run, fmt.Errorf("register %s: %w", res.Table, err))
		}
		run.Tables = append(run.Tables, res)
		if err := j.ledger.Save(ctx, run); err != nil {
			return j.fail(ctx, run, fmt.Errorf("record %s in run ledger: %w", res.Table, err))
		}
		log.Info("table cleansed", "table", res.Table, "rows", res.Rows, "location", res.Location)
	}

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	run.Status = entities.RunStatusSucceeded
	if err := j.ledger.Save(ctx, run); err != nil {
		return run, fmt.Errorf("close run ledger record: %w", err)
	}
	log.Info("silver run completed", "run_id", run.ID, "tables", len(run.Tables))
	return run, nil
}

// fail marks the run failed in the ledger (best effort) and passes the
// original error through.
func (j *SilverJob) fail(ctx context.Context, run entities.RunRecord, cause error) (entities.RunRecord, error) {
	finished := time.Now().UTC()
	run.FinishedAt = &finished
	run.Status = entities.RunStatusFailed
	run.Error = cause.Error()
	if err := j.ledger.Save(ctx, run); err != nil {
		log.Error("could not record run failure", "run_id", run.ID, "err", err)
	}
	return run, cause
}

func (j *SilverJob) runCustomers(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadCustomers(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteCustomers(ctx, runID, j.customers.Resolve(rows))
}

func (j *SilverJob) runProducts(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadProducts(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteProducts(ctx, runID, j.products.Resolve(rows))
}

func (j *SilverJob) runSales(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadSales(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteSales(ctx, runID, j.sales.Reconcile(rows))
}

func (j *SilverJob) runDemographics(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadDemographics(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteDemographics(ctx, runID, j.demographics.Normalize(rows))
}

func (j *SilverJob) runLocations(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadLocations(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteLocations(ctx, runID, j.locations.Normalize(rows))
}

func (j *SilverJob) runCategories(ctx context.Context, runID string) (entities.TableResult, error) {
	rows, err := j.bronze.ReadCategories(ctx)
	if err != nil {
		return entities.TableResult{}, err
	}
	return j.silver.WriteCategories(ctx, runID, j.categories.Normalize(rows))
}
