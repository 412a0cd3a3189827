package entities

import "time"

// Gender is the standardized gender vocabulary of the silver layer.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "n/a"
)

// MaritalStatus is the standardized marital-status vocabulary of the silver layer.
type MaritalStatus string

const (
	MaritalStatusMarried MaritalStatus = "Married"
	MaritalStatusSingle  MaritalStatus = "Single"
	MaritalStatusUnknown MaritalStatus = "n/a"
)

// RawCustomer is a bronze cust_info row exactly as ingested: untrimmed
// strings, dates still encoded as text, id possibly missing.
type RawCustomer struct {
	ID            *int
	Key           string
	FirstName     string
	LastName      string
	MaritalStatus string
	Gender        string
	CreateDate    string
}

// CustomerRecord is the cleansed cust_info row.
//
// Invariants:
//   - ID is present (bronze rows without one are dropped).
//   - At most one record survives per ID: the one with the most recent
//     create date in its bronze group.
type CustomerRecord struct {
	ID            int
	Key           string
	FirstName     string
	LastName      string
	MaritalStatus MaritalStatus
	Gender        Gender
	CreateDate    *time.Time
}
