package usecase

import (
	"testing"

	"warehouse_silver/internal/domain/entities"
)

func TestSalesReconciler_Reconcile(t *testing.T) {
	reconcile := func(sales, quantity, price *float64) entities.SalesTransaction {
		out := SalesReconciler{}.Reconcile([]entities.RawSale{
			{Sales: sales, Quantity: quantity, Price: price},
		})
		return out[0]
	}

	t.Run("consistent row passes through unchanged", func(t *testing.T) {
		got := reconcile(floatp(10), floatp(2), floatp(5))
		if *got.Sales != 10 || *got.Quantity != 2 || *got.Price != 5 {
			t.Fatalf("expected (10, 2, 5), got (%v, %v, %v)", *got.Sales, *got.Quantity, *got.Price)
		}
	})

	t.Run("missing sales recomputed from the factors", func(t *testing.T) {
		got := reconcile(nil, floatp(2), floatp(5))
		if got.Sales == nil || *got.Sales != 10 {
			t.Fatalf("expected sales 10, got %v", got.Sales)
		}
		if *got.Quantity != 2 || *got.Price != 5 {
			t.Fatalf("expected factors kept, got (%v, %v)", *got.Quantity, *got.Price)
		}
	})

	t.Run("negative sales replaced with abs of the product", func(t *testing.T) {
		got := reconcile(floatp(-10), floatp(2), floatp(5))
		if got.Sales == nil || *got.Sales != 10 {
			t.Fatalf("expected sales 10, got %v", got.Sales)
		}
	})

	t.Run("zero quantity derives from original values, not repaired ones", func(t *testing.T) {
		// Each repair reads the ORIGINAL fields: sales mismatches
		// 0*20, so it recomputes to abs(0*20)=0 even though quantity
		// is itself repaired to abs(100/20)=5 right after. The output
		// is deliberately not mutually consistent here.
		got := reconcile(floatp(100), floatp(0), floatp(20))
		if got.Sales == nil || *got.Sales != 0 {
			t.Fatalf("expected sales 0, got %v", got.Sales)
		}
		if got.Quantity == nil || *got.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %v", got.Quantity)
		}
		if got.Price == nil || *got.Price != 20 {
			t.Fatalf("expected price 20, got %v", got.Price)
		}
	})

	t.Run("zero divisor yields nil instead of panicking", func(t *testing.T) {
		got := reconcile(floatp(100), nil, floatp(0))
		if got.Quantity != nil {
			t.Fatalf("expected nil quantity on zero price, got %v", *got.Quantity)
		}
	})

	t.Run("missing co-inputs make the repair nil", func(t *testing.T) {
		got := reconcile(nil, nil, floatp(5))
		if got.Sales != nil {
			t.Fatalf("expected nil sales without quantity, got %v", *got.Sales)
		}
		if got.Quantity != nil {
			t.Fatalf("expected nil quantity without sales, got %v", *got.Quantity)
		}
		if got.Price == nil || *got.Price != 5 {
			t.Fatalf("expected price kept, got %v", got.Price)
		}
	})

	t.Run("positive sales with a missing factor is kept", func(t *testing.T) {
		// The mismatch check cannot fire when a factor is unknown.
		got := reconcile(floatp(42), nil, floatp(7))
		if got.Sales == nil || *got.Sales != 42 {
			t.Fatalf("expected sales kept at 42, got %v", got.Sales)
		}
		if got.Quantity == nil || *got.Quantity != 6 {
			t.Fatalf("expected quantity derived as 6, got %v", got.Quantity)
		}
	})

	t.Run("negative price derived from sales over quantity", func(t *testing.T) {
		got := reconcile(floatp(30), floatp(3), floatp(-10))
		if got.Price == nil || *got.Price != 10 {
			t.Fatalf("expected price 10, got %v", got.Price)
		}
	})

	t.Run("dates parse strictly", func(t *testing.T) {
		out := SalesReconciler{}.Reconcile([]entities.RawSale{
			{OrderDate: "20240105", ShipDate: "20240230", DueDate: "0"},
		})
		got := out[0]
		if got.OrderDate == nil || got.OrderDate.Format("20060102") != "20240105" {
			t.Fatalf("expected parsed order date, got %v", got.OrderDate)
		}
		if got.ShipDate != nil || got.DueDate != nil {
			t.Fatalf("expected invalid dates nil, got %v %v", got.ShipDate, got.DueDate)
		}
	})
}
