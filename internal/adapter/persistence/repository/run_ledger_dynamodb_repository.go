package repository

import (
	"context"
	"fmt"
	"time"

	"warehouse_silver/internal/domain/entities"
	"warehouse_silver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRunLedgerTableName = "silver_job_runs"

type runItem struct {
	ID         string      `dynamodbav:"id"`
	Status     string      `dynamodbav:"status"`
	StartedAt  string      `dynamodbav:"started_at"`
	FinishedAt string      `dynamodbav:"finished_at,omitempty"`
	Tables     []tableItem `dynamodbav:"tables,omitempty"`
	Error      string      `dynamodbav:"error,omitempty"`
}

type tableItem struct {
	Table    string `dynamodbav:"table"`
	Rows     int    `dynamodbav:"rows"`
	Location string `dynamodbav:"location"`
}

// RunLedgerDynamoRepository persists run audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each Save replaces the whole item, so the record always reflects the
// latest run state.
type RunLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRunLedgerRepository = (*RunLedgerDynamoRepository)(nil)

func NewRunLedgerDynamoRepository(ddb *dynamodb.Client) *RunLedgerDynamoRepository {
	return &RunLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUN_LEDGER_TABLE", defaultRunLedgerTableName),
	}
}

func (r *RunLedgerDynamoRepository) Save(ctx context.Context, run entities.RunRecord) error {
	av, err := attributevalue.MarshalMap(toRunItem(run))
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("save run record %s: %w", run.ID, err)
	}
	return nil
}

func toRunItem(run entities.RunRecord) runItem {
	it := runItem{
		ID:        run.ID,
		Status:    string(run.Status),
		StartedAt: run.StartedAt.Format(time.RFC3339),
		Error:     run.Error,
	}
	if run.FinishedAt != nil {
		it.FinishedAt = run.FinishedAt.Format(time.RFC3339)
	}
	for _, t := range run.Tables {
		it.Tables = append(it.Tables, tableItem{
			Table:    t.Table,
			Rows:     t.Rows,
			Location: t.Location,
		})
	}
	return it
}
