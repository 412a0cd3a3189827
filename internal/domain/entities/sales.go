package entities

import "time"

// RawSale is a bronze sales_details row. The three dates are still
// YYYYMMDD-encoded text; the numeric fields may each be missing, zero,
// negative, or mutually inconsistent.
type RawSale struct {
	OrderNum   string
	ProductKey string
	CustomerID *int
	OrderDate  string
	ShipDate   string
	DueDate    string
	Sales      *float64
	Quantity   *float64
	Price      *float64
}

// SalesTransaction is the cleansed sales_details row. Dates are either
// valid calendar dates or nil. Sales, Quantity and Price stay nullable:
// the repair formulas yield nil when a co-input is missing or a divisor
// is zero.
type SalesTransaction struct {
	OrderNum   string
	ProductKey string
	CustomerID *int
	OrderDate  *time.Time
	ShipDate   *time.Time
	DueDate    *time.Time
	Sales      *float64
	Quantity   *float64
	Price      *float64
}
