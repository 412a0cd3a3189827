package usecase

import (
	"math"

	"warehouse_silver/internal/domain/cleanse"
	"warehouse_silver/internal/domain/entities"
)

// SalesReconciler parses the three transaction dates and repairs the
// sales = quantity * price invariant.
//
// Every repair reads the ORIGINAL input values, not the freshly
// repaired ones. That reproduces the source behavior exactly: when two
// or more of the three fields are bad at once the outputs are not
// guaranteed mutually consistent (e.g. sales 100, quantity 0, price 20
// yields sales 0 from the original quantity but quantity 5 from the
// original sales). Do not "fix" this to a fixed-point computation.
type SalesReconciler struct{}

// Reconcile maps every bronze row to one cleansed row.
func (SalesReconciler) Reconcile(rows []entities.RawSale) []entities.SalesTransaction {
	out := make([]entities.SalesTransaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.SalesTransaction{
			OrderNum:   row.OrderNum,
			ProductKey: row.ProductKey,
			CustomerID: copyIntPtr(row.CustomerID),
			OrderDate:  cleanse.ParseCompactDate(row.OrderDate),
			ShipDate:   cleanse.ParseCompactDate(row.ShipDate),
			DueDate:    cleanse.ParseCompactDate(row.DueDate),
			Sales:      repairSales(row.Sales, row.Quantity, row.Price),
			Quantity:   repairFactor(row.Quantity, row.Sales, row.Price),
			Price:      repairFactor(row.Price, row.Sales, row.Quantity),
		})
	}
	return out
}

// repairSales keeps a positive sales amount that does not provably
// contradict quantity*price, and recomputes it from the original
// factors otherwise. The mismatch check only fires when both factors
// are present; a recompute with a missing factor yields nil.
func repairSales(sales, quantity, price *float64) *float64 {
	if quantity == nil || price == nil {
		// Without both factors the mismatch check cannot fire and a
		// recompute has nothing to multiply.
		if sales != nil && *sales > 0 {
			return copyFloatPtr(sales)
		}
		return nil
	}
	product := *quantity * *price
	if sales != nil && *sales > 0 && *sales == product {
		return copyFloatPtr(sales)
	}
	v := math.Abs(product)
	return &v
}

// repairFactor keeps a positive factor (quantity or price), and derives
// it from the original sales divided by the other original factor
// otherwise. A missing input or zero divisor yields nil.
func repairFactor(orig, sales, other *float64) *float64 {
	if orig != nil && *orig > 0 {
		return copyFloatPtr(orig)
	}
	if sales == nil || other == nil || *other == 0 {
		return nil
	}
	v := math.Abs(*sales / *other)
	return &v
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
