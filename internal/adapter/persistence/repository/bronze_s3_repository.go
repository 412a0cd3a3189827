package repository

import (
	"context"
	"fmt"
	"strings"

	"warehouse_silver/internal/domain/entities"
	"warehouse_silver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	defaultWarehouseBucket = "warehouse-lake"
	defaultBronzePrefix    = "bronze/"
)

// BronzeS3Repository reads the raw bronze tables from S3. Each table is
// the set of CSV objects under <prefix><table>/, read in full per run.
type BronzeS3Repository struct {
	s3c    *s3.Client
	bucket string
	prefix string
}

var _ interfaces.IBronzeRepository = (*BronzeS3Repository)(nil)

func NewBronzeS3Repository(s3c *s3.Client) *BronzeS3Repository {
	return &BronzeS3Repository{
		s3c:    s3c,
		bucket: getenvDefault("WAREHOUSE_BUCKET", defaultWarehouseBucket),
		prefix: getenvDefault("BRONZE_PREFIX", defaultBronzePrefix),
	}
}

func (r *BronzeS3Repository) ReadCustomers(ctx context.Context) ([]entities.RawCustomer, error) {
	recs, err := r.readTable(ctx, "cust_info")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawCustomer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawCustomer{
			ID:            rec.intPtr("cst_id"),
			Key:           rec.str("cst_key"),
			FirstName:     rec.str("cst_firstname"),
			LastName:      rec.str("cst_lastname"),
			MaritalStatus: rec.str("cst_marital_status"),
			Gender:        rec.str("cst_gndr"),
			CreateDate:    rec.str("cst_create_date"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) ReadProducts(ctx context.Context) ([]entities.RawProduct, error) {
	recs, err := r.readTable(ctx, "prd_info")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawProduct, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawProduct{
			ID:        rec.intPtr("prd_id"),
			Key:       rec.str("prd_key"),
			Name:      rec.str("prd_nm"),
			Cost:      rec.floatPtr("prd_cost"),
			Line:      rec.str("prd_line"),
			StartDate: rec.str("prd_start_dt"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) ReadSales(ctx context.Context) ([]entities.RawSale, error) {
	recs, err := r.readTable(ctx, "sales_details")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawSale, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawSale{
			OrderNum:   rec.str("sls_ord_num"),
			ProductKey: rec.str("sls_prd_key"),
			CustomerID: rec.intPtr("sls_cust_id"),
			OrderDate:  rec.str("sls_order_dt"),
			ShipDate:   rec.str("sls_ship_dt"),
			DueDate:    rec.str("sls_due_dt"),
			Sales:      rec.floatPtr("sls_sales"),
			Quantity:   rec.floatPtr("sls_quantity"),
			Price:      rec.floatPtr("sls_price"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) ReadDemographics(ctx context.Context) ([]entities.RawDemographic, error) {
	recs, err := r.readTable(ctx, "cust_az12")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawDemographic, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawDemographic{
			CID:       rec.str("cid"),
			BirthDate: rec.str("bdate"),
			Gender:    rec.str("gen"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) ReadLocations(ctx context.Context) ([]entities.RawLocation, error) {
	recs, err := r.readTable(ctx, "loc_a101")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawLocation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawLocation{
			CID:     rec.str("cid"),
			Country: rec.str("cntry"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) ReadCategories(ctx context.Context) ([]entities.RawCategory, error) {
	recs, err := r.readTable(ctx, "px_cat_g1v2")
	if err != nil {
		return nil, err
	}
	out := make([]entities.RawCategory, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.RawCategory{
			ID:          rec.str("id"),
			Category:    rec.str("cat"),
			Subcategory: rec.str("subcat"),
			Maintenance: rec.str("maintenance"),
		})
	}
	return out, nil
}

func (r *BronzeS3Repository) readTable(ctx context.Context, table string) ([]record, error) {
	prefix := r.prefix + table + "/"
	var recs []record

	p := s3.NewListObjectsV2Paginator(r.s3c, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bronze objects for %s: %w", table, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(key, ".csv") {
				continue
			}
			objRecs, err := r.readObject(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("read bronze object %s: %w", key, err)
			}
			recs = append(recs, objRecs...)
		}
	}
	return recs, nil
}

func (r *BronzeS3Repository) readObject(ctx context.Context, key string) ([]record, error) {
	out, err := r.s3c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return parseRecords(out.Body)
}
