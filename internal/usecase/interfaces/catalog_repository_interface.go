package interfaces

import "context"

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository.go -package=mock_interfaces

// ICatalogRepository abstracts the warehouse catalog for the silver
// database.
//
// DropTables removes every registered silver table (part of the hard
// pre-run reset). RegisterTable points the fixed logical table name at
// a freshly staged collection; the schema is inferred from the written
// rows by the adapter.
type ICatalogRepository interface {
	DropTables(ctx context.Context) error
	RegisterTable(ctx context.Context, table, location string) error
}
