package entities

import "time"

// RawDemographic is a bronze cust_az12 row. CID may carry a "NAS" prefix.
type RawDemographic struct {
	CID       string
	BirthDate string
	Gender    string
}

// CustomerDemographic is the cleansed cust_az12 row. BirthDate is nil
// when missing, unparseable, or in the future.
type CustomerDemographic struct {
	CID       string
	BirthDate *time.Time
	Gender    Gender
}

// RawLocation is a bronze loc_a101 row. CID may contain dashes.
type RawLocation struct {
	CID     string
	Country string
}

// CustomerLocation is the cleansed loc_a101 row. Country is a canonical
// label for known codes, "n/a" when empty, otherwise the trimmed
// literal value.
type CustomerLocation struct {
	CID     string
	Country string
}

// RawCategory is a bronze px_cat_g1v2 row.
type RawCategory struct {
	ID          string
	Category    string
	Subcategory string
	Maintenance string
}

// ProductCategory is the cleansed px_cat_g1v2 row: every field trimmed.
type ProductCategory struct {
	ID          string
	Category    string
	Subcategory string
	Maintenance string
}
