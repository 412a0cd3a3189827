package repository

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"warehouse_silver/internal/domain/entities"
	"warehouse_silver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/parquet-go/parquet-go"
)

const defaultSilverPrefix = "silver/"

// Parquet row shapes of the silver tables. Column names follow the
// warehouse vocabulary; the Glue catalog adapter infers its schemas
// from these same structs, so what is registered always matches what
// was written.

type customerItem struct {
	CstID            int32      `parquet:"cst_id"`
	CstKey           string     `parquet:"cst_key"`
	CstFirstname     string     `parquet:"cst_firstname"`
	CstLastname      string     `parquet:"cst_lastname"`
	CstMaritalStatus string     `parquet:"cst_marital_status"`
	CstGndr          string     `parquet:"cst_gndr"`
	CstCreateDate    *time.Time `parquet:"cst_create_date,optional"`
}

type productItem struct {
	PrdID      *int32     `parquet:"prd_id,optional"`
	CatID      string     `parquet:"cat_id"`
	PrdKey     string     `parquet:"prd_key"`
	PrdNm      string     `parquet:"prd_nm"`
	PrdCost    float64    `parquet:"prd_cost"`
	PrdLine    string     `parquet:"prd_line"`
	PrdStartDt *time.Time `parquet:"prd_start_dt,optional"`
	PrdEndDt   *time.Time `parquet:"prd_end_dt,optional"`
}

type saleItem struct {
	SlsOrdNum   string     `parquet:"sls_ord_num"`
	SlsPrdKey   string     `parquet:"sls_prd_key"`
	SlsCustID   *int32     `parquet:"sls_cust_id,optional"`
	SlsOrderDt  *time.Time `parquet:"sls_order_dt,optional"`
	SlsShipDt   *time.Time `parquet:"sls_ship_dt,optional"`
	SlsDueDt    *time.Time `parquet:"sls_due_dt,optional"`
	SlsSales    *float64   `parquet:"sls_sales,optional"`
	SlsQuantity *float64   `parquet:"sls_quantity,optional"`
	SlsPrice    *float64   `parquet:"sls_price,optional"`
}

type demographicItem struct {
	CID   string     `parquet:"cid"`
	Bdate *time.Time `parquet:"bdate,optional"`
	Gen   string     `parquet:"gen"`
}

type locationItem struct {
	CID   string `parquet:"cid"`
	Cntry string `parquet:"cntry"`
}

type categoryItem struct {
	ID          string `parquet:"id"`
	Cat         string `parquet:"cat"`
	Subcat      string `parquet:"subcat"`
	Maintenance string `parquet:"maintenance"`
}

// SilverS3Repository stages the cleansed silver tables as parquet
// objects in S3. Each write lands under <prefix><table>/<runID>/ so the
// catalog pointer only moves once the collection is fully written.
type SilverS3Repository struct {
	s3c    *s3.Client
	bucket string
	prefix string
}

var _ interfaces.ISilverRepository = (*SilverS3Repository)(nil)

func NewSilverS3Repository(s3c *s3.Client) *SilverS3Repository {
	return &SilverS3Repository{
		s3c:    s3c,
		bucket: getenvDefault("WAREHOUSE_BUCKET", defaultWarehouseBucket),
		prefix: getenvDefault("SILVER_PREFIX", defaultSilverPrefix),
	}
}

// Reset deletes every object under the silver prefix, in batches of up
// to 1000 keys.
func (r *SilverS3Repository) Reset(ctx context.Context) error {
	p := s3.NewListObjectsV2Paginator(r.s3c, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(r.prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("list silver objects: %w", err)
		}
		if len(page.Contents) == 0 {
			continue
		}
		ids := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = r.s3c.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(r.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("delete silver objects: %w", err)
		}
	}
	return nil
}

func (r *SilverS3Repository) WriteCustomers(ctx context.Context, runID string, rows []entities.CustomerRecord) (entities.TableResult, error) {
	items := make([]customerItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, customerItem{
			CstID:            int32(row.ID),
			CstKey:           row.Key,
			CstFirstname:     row.FirstName,
			CstLastname:      row.LastName,
			CstMaritalStatus: string(row.MaritalStatus),
			CstGndr:          string(row.Gender),
			CstCreateDate:    row.CreateDate,
		})
	}
	return writeTable(ctx, r, "cust_info", runID, items)
}

func (r *SilverS3Repository) WriteProducts(ctx context.Context, runID string, rows []entities.ProductRecord) (entities.TableResult, error) {
	items := make([]productItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, productItem{
			PrdID:      int32Ptr(row.ID),
			CatID:      row.CatID,
			PrdKey:     row.Key,
			PrdNm:      row.Name,
			PrdCost:    row.Cost,
			PrdLine:    string(row.Line),
			PrdStartDt: row.StartDate,
			PrdEndDt:   row.EndDate,
		})
	}
	return writeTable(ctx, r, "prd_info", runID, items)
}

func (r *SilverS3Repository) WriteSales(ctx context.Context, runID string, rows []entities.SalesTransaction) (entities.TableResult, error) {
	items := make([]saleItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, saleItem{
			SlsOrdNum:   row.OrderNum,
			SlsPrdKey:   row.ProductKey,
			SlsCustID:   int32Ptr(row.CustomerID),
			SlsOrderDt:  row.OrderDate,
			SlsShipDt:   row.ShipDate,
			SlsDueDt:    row.DueDate,
			SlsSales:    row.Sales,
			SlsQuantity: row.Quantity,
			SlsPrice:    row.Price,
		})
	}
	return writeTable(ctx, r, "sales_details", runID, items)
}

func (r *SilverS3Repository) WriteDemographics(ctx context.Context, runID string, rows []entities.CustomerDemographic) (entities.TableResult, error) {
	items := make([]demographicItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, demographicItem{
			CID:   row.CID,
			Bdate: row.BirthDate,
			Gen:   string(row.Gender),
		})
	}
	return writeTable(ctx, r, "cust_az12", runID, items)
}

func (r *SilverS3Repository) WriteLocations(ctx context.Context, runID string, rows []entities.CustomerLocation) (entities.TableResult, error) {
	items := make([]locationItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, locationItem{CID: row.CID, Cntry: row.Country})
	}
	return writeTable(ctx, r, "loc_a101", runID, items)
}

func (r *SilverS3Repository) WriteCategories(ctx context.Context, runID string, rows []entities.ProductCategory) (entities.TableResult, error) {
	items := make([]categoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, categoryItem{
			ID:          row.ID,
			Cat:         row.Category,
			Subcat:      row.Subcategory,
			Maintenance: row.Maintenance,
		})
	}
	return writeTable(ctx, r, "px_cat_g1v2", runID, items)
}

func writeTable[T any](ctx context.Context, r *SilverS3Repository, table, runID string, items []T) (entities.TableResult, error) {
	buf := new(bytes.Buffer)
	w := parquet.NewGenericWriter[T](buf)
	if len(items) > 0 {
		if _, err := w.Write(items); err != nil {
			return entities.TableResult{}, fmt.Errorf("encode %s parquet: %w", table, err)
		}
	}
	if err := w.Close(); err != nil {
		return entities.TableResult{}, fmt.Errorf("close %s parquet: %w", table, err)
	}

	key := fmt.Sprintf("%s%s/%s/part-00000.parquet", r.prefix, table, runID)
	_, err := r.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return entities.TableResult{}, fmt.Errorf("put %s parquet: %w", table, err)
	}

	return entities.TableResult{
		Table:    table,
		Rows:     len(items),
		Location: fmt.Sprintf("s3://%s/%s%s/%s/", r.bucket, r.prefix, table, runID),
	}, nil
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	c := int32(*v)
	return &c
}
