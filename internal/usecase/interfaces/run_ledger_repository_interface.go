package interfaces

import (
	"context"

	"warehouse_silver/internal/domain/entities"
)

//go:generate mockgen -source=run_ledger_repository_interface.go -destination=mocks/mock_run_ledger_repository.go -package=mock_interfaces

// IRunLedgerRepository persists job run audit records.
//
// Save upserts the full record; the job calls it at start, after each
// table lands, and once more at the end with the final status.
type IRunLedgerRepository interface {
	Save(ctx context.Context, run entities.RunRecord) error
}
