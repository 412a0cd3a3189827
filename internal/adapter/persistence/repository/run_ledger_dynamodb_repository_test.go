package repository

import (
	"testing"
	"time"

	"warehouse_silver/internal/domain/entities"
)

func TestToRunItem(t *testing.T) {
	started := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(3 * time.Minute)

	run := entities.RunRecord{
		ID:         "run-1",
		Status:     entities.RunStatusSucceeded,
		StartedAt:  started,
		FinishedAt: &finished,
		Tables: []entities.TableResult{
			{Table: "cust_info", Rows: 10, Location: "s3://lake/silver/cust_info/run-1/"},
		},
	}

	it := toRunItem(run)
	if it.ID != "run-1" || it.Status != "succeeded" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.StartedAt != "2025-08-01T10:00:00Z" || it.FinishedAt != "2025-08-01T10:03:00Z" {
		t.Fatalf("unexpected timestamps: %+v", it)
	}
	if len(it.Tables) != 1 || it.Tables[0].Rows != 10 {
		t.Fatalf("unexpected tables: %+v", it.Tables)
	}

	t.Run("open run has no finish timestamp", func(t *testing.T) {
		it := toRunItem(entities.RunRecord{ID: "run-2", Status: entities.RunStatusRunning, StartedAt: started})
		if it.FinishedAt != "" || it.Error != "" {
			t.Fatalf("expected empty optional fields, got %+v", it)
		}
	})
}
