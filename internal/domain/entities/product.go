package entities

import "time"

// ProductLine is the standardized product-line vocabulary of the silver layer.
type ProductLine string

const (
	ProductLineMountain   ProductLine = "Mountain"
	ProductLineRoad       ProductLine = "Road"
	ProductLineOtherSales ProductLine = "Other Sales"
	ProductLineTouring    ProductLine = "Touring"
	ProductLineUnknown    ProductLine = "n/a"
)

// RawProduct is a bronze prd_info row. Key still carries the 6-character
// category prefix; Cost and StartDate may be missing.
type RawProduct struct {
	ID        *int
	Key       string
	Name      string
	Cost      *float64
	Line      string
	StartDate string
}

// ProductRecord is the cleansed prd_info row.
//
// CatID is derived from the first 5 characters of the bronze key
// (dashes replaced by underscores); Key is the remainder past the
// prefix. For rows sharing a Key the validity windows [StartDate,
// EndDate] are contiguous and non-overlapping ordered by StartDate,
// and the latest row is open-ended (EndDate nil).
type ProductRecord struct {
	ID        *int
	CatID     string
	Key       string
	Name      string
	Cost      float64
	Line      ProductLine
	StartDate *time.Time
	EndDate   *time.Time
}
