package usecase

import (
	"testing"
	"time"

	"warehouse_silver/internal/domain/entities"
)

func floatp(v float64) *float64 { return &v }

func TestProductResolver_Resolve(t *testing.T) {
	t.Run("derives category id and strips the key prefix", func(t *testing.T) {
		rows := []entities.RawProduct{
			{Key: "CO-RF-FR-R92B-58", Name: "HL Road Frame"},
		}

		out := ProductResolver{}.Resolve(rows)
		got := out[0]
		if got.CatID != "CO_RF" {
			t.Fatalf("expected cat id CO_RF, got %q", got.CatID)
		}
		if got.Key != "FR-R92B-58" {
			t.Fatalf("expected stripped key FR-R92B-58, got %q", got.Key)
		}
	})

	t.Run("short keys yield an empty stripped key", func(t *testing.T) {
		out := ProductResolver{}.Resolve([]entities.RawProduct{{Key: "CO-RF"}})
		if out[0].CatID != "CO_RF" || out[0].Key != "" {
			t.Fatalf("unexpected key handling: %+v", out[0])
		}
	})

	t.Run("defaults missing cost to zero and trims the name", func(t *testing.T) {
		rows := []entities.RawProduct{
			{Key: "AC-HE-HL-U509", Name: "  Sport-100 Helmet  "},
			{Key: "AC-HE-HL-U510", Cost: floatp(12.5)},
		}

		out := ProductResolver{}.Resolve(rows)
		if out[0].Cost != 0 || out[0].Name != "Sport-100 Helmet" {
			t.Fatalf("unexpected defaults: %+v", out[0])
		}
		if out[1].Cost != 12.5 {
			t.Fatalf("expected cost kept, got %+v", out[1])
		}
	})

	t.Run("standardizes the product line", func(t *testing.T) {
		rows := []entities.RawProduct{
			{Key: "AA-AA-1", Line: " m "},
			{Key: "AA-AA-2", Line: "R"},
			{Key: "AA-AA-3", Line: "S"},
			{Key: "AA-AA-4", Line: "T"},
			{Key: "AA-AA-5", Line: "Q"},
		}

		out := ProductResolver{}.Resolve(rows)
		want := []entities.ProductLine{
			entities.ProductLineMountain,
			entities.ProductLineRoad,
			entities.ProductLineOtherSales,
			entities.ProductLineTouring,
			entities.ProductLineUnknown,
		}
		for i, line := range want {
			if out[i].Line != line {
				t.Fatalf("row %d: expected line %q, got %q", i, line, out[i].Line)
			}
		}
	})

	t.Run("validity windows are contiguous per key", func(t *testing.T) {
		rows := []entities.RawProduct{
			{Key: "AC-HE-HL-U509", StartDate: "2023-01-01"},
			{Key: "AC-HE-HL-U509", StartDate: "2024-07-01"},
			{Key: "AC-HE-HL-U509", StartDate: "2024-01-01"},
			{Key: "CL-SO-SO-R809", StartDate: "2022-05-05"},
		}

		out := ProductResolver{}.Resolve(rows)

		byStart := map[string]entities.ProductRecord{}
		for _, rec := range out {
			if rec.Key == "HL-U509" {
				byStart[rec.StartDate.Format("2006-01-02")] = rec
			}
		}
		if len(byStart) != 3 {
			t.Fatalf("expected 3 windows for HL-U509, got %d", len(byStart))
		}

		first := byStart["2023-01-01"]
		if first.EndDate == nil || !first.EndDate.Equal(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected first window to close 2023-12-31, got %v", first.EndDate)
		}
		second := byStart["2024-01-01"]
		if second.EndDate == nil || !second.EndDate.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected second window to close 2024-06-30, got %v", second.EndDate)
		}
		last := byStart["2024-07-01"]
		if last.EndDate != nil {
			t.Fatalf("expected latest window open-ended, got %v", last.EndDate)
		}

		for _, rec := range out {
			if rec.Key == "SO-R809" && rec.EndDate != nil {
				t.Fatalf("expected single-row key open-ended, got %v", rec.EndDate)
			}
		}
	})

	t.Run("missing start date sorts first and closes before the dated row", func(t *testing.T) {
		rows := []entities.RawProduct{
			{Key: "AA-BB-X1", StartDate: "2024-01-10"},
			{Key: "AA-BB-X1"},
		}

		out := ProductResolver{}.Resolve(rows)
		var undated, dated entities.ProductRecord
		for _, rec := range out {
			if rec.StartDate == nil {
				undated = rec
			} else {
				dated = rec
			}
		}
		if undated.EndDate == nil || !undated.EndDate.Equal(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected undated row to close 2024-01-09, got %v", undated.EndDate)
		}
		if dated.EndDate != nil {
			t.Fatalf("expected dated row open-ended, got %v", dated.EndDate)
		}
	})
}
