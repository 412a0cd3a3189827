package usecase

import (
	"testing"

	"warehouse_silver/internal/domain/entities"
)

func intp(v int) *int { return &v }

func TestCustomerResolver_Resolve(t *testing.T) {
	t.Run("keeps the most recent row per id", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), FirstName: "old", CreateDate: "2024-01-01"},
			{ID: intp(1), FirstName: "new", CreateDate: "2024-06-01"},
			{ID: intp(2), FirstName: "only", CreateDate: "2023-01-01"},
			{ID: intp(1), FirstName: "middle", CreateDate: "2024-03-01"},
		}

		out := CustomerResolver{}.Resolve(rows)
		if len(out) != 2 {
			t.Fatalf("expected 2 records, got %d", len(out))
		}
		if out[0].ID != 1 || out[0].FirstName != "new" {
			t.Fatalf("expected most recent row for id 1, got %+v", out[0])
		}
		if out[1].ID != 2 || out[1].FirstName != "only" {
			t.Fatalf("expected single row for id 2, got %+v", out[1])
		}
	})

	t.Run("rows without an id are dropped", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{FirstName: "ghost", CreateDate: "2024-01-01"},
			{ID: intp(7), FirstName: "kept", CreateDate: "2024-01-01"},
		}

		out := CustomerResolver{}.Resolve(rows)
		if len(out) != 1 || out[0].ID != 7 {
			t.Fatalf("expected only the identified row, got %+v", out)
		}
	})

	t.Run("missing create date loses to any dated row", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), FirstName: "undated"},
			{ID: intp(1), FirstName: "dated", CreateDate: "2020-01-01"},
		}

		out := CustomerResolver{}.Resolve(rows)
		if len(out) != 1 || out[0].FirstName != "dated" {
			t.Fatalf("expected dated row to win, got %+v", out)
		}
	})

	t.Run("equal create dates keep input order by default", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), FirstName: "first", CreateDate: "2024-01-01"},
			{ID: intp(1), FirstName: "second", CreateDate: "2024-01-01"},
		}

		out := CustomerResolver{}.Resolve(rows)
		if len(out) != 1 || out[0].FirstName != "first" {
			t.Fatalf("expected stable input order, got %+v", out)
		}
	})

	t.Run("tie break comparator pins a different winner", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), Key: "B", CreateDate: "2024-01-01"},
			{ID: intp(1), Key: "A", CreateDate: "2024-01-01"},
		}

		r := CustomerResolver{
			TieBreak: func(a, b entities.RawCustomer) bool { return a.Key < b.Key },
		}
		out := r.Resolve(rows)
		if len(out) != 1 || out[0].Key != "A" {
			t.Fatalf("expected tie break on key, got %+v", out)
		}
	})

	t.Run("standardizes gender and marital status", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), Gender: " m ", MaritalStatus: "s"},
			{ID: intp(2), Gender: "F", MaritalStatus: "M"},
			{ID: intp(3), Gender: "x", MaritalStatus: ""},
		}

		out := CustomerResolver{}.Resolve(rows)
		if out[0].Gender != entities.GenderMale || out[0].MaritalStatus != entities.MaritalStatusSingle {
			t.Fatalf("unexpected normalization: %+v", out[0])
		}
		if out[1].Gender != entities.GenderFemale || out[1].MaritalStatus != entities.MaritalStatusMarried {
			t.Fatalf("unexpected normalization: %+v", out[1])
		}
		if out[2].Gender != entities.GenderUnknown || out[2].MaritalStatus != entities.MaritalStatusUnknown {
			t.Fatalf("unexpected normalization: %+v", out[2])
		}
	})

	t.Run("trims key and name fields", func(t *testing.T) {
		rows := []entities.RawCustomer{
			{ID: intp(1), Key: " AW001 ", FirstName: "  Jon ", LastName: " Yang  "},
		}

		out := CustomerResolver{}.Resolve(rows)
		got := out[0]
		if got.Key != "AW001" || got.FirstName != "Jon" || got.LastName != "Yang" {
			t.Fatalf("expected trimmed fields, got %+v", got)
		}
	})
}
