package usecase

import (
	"sort"
	"strings"

	"warehouse_silver/internal/domain/cleanse"
	"warehouse_silver/internal/domain/entities"
)

var productLineCodes = cleanse.CodeMap{
	"M": string(entities.ProductLineMountain),
	"R": string(entities.ProductLineRoad),
	"S": string(entities.ProductLineOtherSales),
	"T": string(entities.ProductLineTouring),
}

// ProductResolver splits the composite bronze product key into a
// category id and a bare key, standardizes the descriptive fields, and
// derives a slowly-changing validity window per key.
type ProductResolver struct{}

// Resolve maps every bronze row to one cleansed row. Rows sharing a
// (post-strip) key get contiguous, non-overlapping [StartDate, EndDate]
// windows ordered by StartDate; the latest row stays open-ended.
func (ProductResolver) Resolve(rows []entities.RawProduct) []entities.ProductRecord {
	out := make([]entities.ProductRecord, 0, len(rows))
	for _, row := range rows {
		cost := 0.0
		if row.Cost != nil {
			cost = *row.Cost
		}
		out = append(out, entities.ProductRecord{
			ID:        copyIntPtr(row.ID),
			CatID:     categoryID(row.Key),
			Key:       stripCategoryPrefix(row.Key),
			Name:      strings.TrimSpace(row.Name),
			Cost:      cost,
			Line:      entities.ProductLine(productLineCodes.Label(row.Line)),
			StartDate: cleanse.CastDate(row.StartDate),
		})
	}

	// Sort-then-scan per key: each window closes the day before its
	// successor opens. Missing start dates rank first, like the source
	// ascending order.
	byKey := make(map[string][]int)
	for i := range out {
		byKey[out[i].Key] = append(byKey[out[i].Key], i)
	}
	for _, idxs := range byKey {
		sort.SliceStable(idxs, func(i, j int) bool {
			a, b := out[idxs[i]].StartDate, out[idxs[j]].StartDate
			switch {
			case a == nil:
				return b != nil
			case b == nil:
				return false
			default:
				return a.Before(*b)
			}
		})
		for k := 0; k+1 < len(idxs); k++ {
			next := out[idxs[k+1]].StartDate
			if next == nil {
				continue
			}
			end := next.AddDate(0, 0, -1)
			out[idxs[k]].EndDate = &end
		}
	}
	return out
}

// categoryID is the first 5 characters of the composite key with dashes
// folded to underscores.
func categoryID(rawKey string) string {
	prefix := rawKey
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return strings.ReplaceAll(prefix, "-", "_")
}

// stripCategoryPrefix drops the 6-character category prefix plus
// separator from the composite key.
func stripCategoryPrefix(rawKey string) string {
	if len(rawKey) <= 6 {
		return ""
	}
	return rawKey[6:]
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
