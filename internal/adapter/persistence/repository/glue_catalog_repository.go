package repository

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"warehouse_silver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
)

const defaultSilverDatabase = "silver_db"

const (
	parquetInputFormat  = "org.apache.hadoop.hive.ql.io.parquet.MapredParquetInputFormat"
	parquetOutputFormat = "org.apache.hadoop.hive.ql.io.parquet.MapredParquetOutputFormat"
	parquetSerde        = "org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe"
)

// tableSchemas maps each silver table to the parquet row shape it is
// written with; registered column schemas are inferred from these.
var tableSchemas = map[string]any{
	"cust_info":     customerItem{},
	"prd_info":      productItem{},
	"sales_details": saleItem{},
	"cust_az12":     demographicItem{},
	"loc_a101":      locationItem{},
	"px_cat_g1v2":   categoryItem{},
}

// GlueCatalogRepository manages the silver Glue database: dropping all
// registered tables during the pre-run reset and re-registering each
// table against its freshly staged location.
type GlueCatalogRepository struct {
	gluec    *glue.Client
	database string
}

var _ interfaces.ICatalogRepository = (*GlueCatalogRepository)(nil)

func NewGlueCatalogRepository(gluec *glue.Client) *GlueCatalogRepository {
	return &GlueCatalogRepository{
		gluec:    gluec,
		database: getenvDefault("SILVER_DATABASE", defaultSilverDatabase),
	}
}

func (r *GlueCatalogRepository) DropTables(ctx context.Context) error {
	var next *string
	for {
		out, err := r.gluec.GetTables(ctx, &glue.GetTablesInput{
			DatabaseName: aws.String(r.database),
			NextToken:    next,
		})
		if err != nil {
			return fmt.Errorf("list tables in %s: %w", r.database, err)
		}
		for _, tbl := range out.TableList {
			_, err := r.gluec.DeleteTable(ctx, &glue.DeleteTableInput{
				DatabaseName: aws.String(r.database),
				Name:         tbl.Name,
			})
			if err != nil {
				return fmt.Errorf("delete table %s.%s: %w", r.database, aws.ToString(tbl.Name), err)
			}
		}
		next = out.NextToken
		if next == nil {
			return nil
		}
	}
}

// RegisterTable points the logical table name at a staged parquet
// location. No partition keys: the collections are small enough to scan
// whole.
func (r *GlueCatalogRepository) RegisterTable(ctx context.Context, table, location string) error {
	item, ok := tableSchemas[table]
	if !ok {
		return fmt.Errorf("no schema registered for table %s", table)
	}

	_, err := r.gluec.CreateTable(ctx, &glue.CreateTableInput{
		DatabaseName: aws.String(r.database),
		TableInput: &types.TableInput{
			Name:       aws.String(table),
			TableType:  aws.String("EXTERNAL_TABLE"),
			Parameters: map[string]string{"classification": "parquet"},
			StorageDescriptor: &types.StorageDescriptor{
				Columns:      inferColumns(item),
				Location:     aws.String(location),
				InputFormat:  aws.String(parquetInputFormat),
				OutputFormat: aws.String(parquetOutputFormat),
				SerdeInfo: &types.SerDeInfo{
					SerializationLibrary: aws.String(parquetSerde),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create table %s.%s: %w", r.database, table, err)
	}
	return nil
}

// inferColumns walks a parquet row struct and derives the Glue column
// list: names from the parquet tags, types from the Go field types.
func inferColumns(item any) []types.Column {
	t := reflect.TypeOf(item)
	cols := make([]types.Column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("parquet"), ",", 2)[0]
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		cols = append(cols, types.Column{
			Name: aws.String(name),
			Type: aws.String(glueType(f.Type)),
		})
	}
	return cols
}

func glueType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return "timestamp"
	}
	switch t.Kind() {
	case reflect.Int32:
		return "int"
	case reflect.Int, reflect.Int64:
		return "bigint"
	case reflect.Float32:
		return "float"
	case reflect.Float64:
		return "double"
	case reflect.Bool:
		return "boolean"
	default:
		return "string"
	}
}
