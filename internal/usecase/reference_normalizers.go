package usecase

import (
	"strings"
	"time"

	"warehouse_silver/internal/domain/cleanse"
	"warehouse_silver/internal/domain/entities"
)

var (
	// The ERP feed spells gender out as often as it abbreviates it.
	demographicGenderCodes = cleanse.CodeMap{
		"M":      string(entities.GenderMale),
		"MALE":   string(entities.GenderMale),
		"F":      string(entities.GenderFemale),
		"FEMALE": string(entities.GenderFemale),
	}
	countryCodes = cleanse.CodeMap{
		"US":  "United States",
		"USA": "United States",
		"DE":  "Germany",
	}
)

// DemographicNormalizer cleanses the ERP customer demographics feed:
// strips the NAS id prefix, nulls out future birth dates, and
// standardizes gender.
type DemographicNormalizer struct {
	// Now supplies the reference instant for the future-birth-date
	// check. Nil means time.Now.
	Now func() time.Time
}

// Normalize maps every bronze row to one cleansed row.
func (n DemographicNormalizer) Normalize(rows []entities.RawDemographic) []entities.CustomerDemographic {
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	out := make([]entities.CustomerDemographic, 0, len(rows))
	for _, row := range rows {
		birth := cleanse.CastDate(row.BirthDate)
		if birth != nil && birth.After(now) {
			birth = nil
		}
		out = append(out, entities.CustomerDemographic{
			CID:       strings.TrimPrefix(row.CID, "NAS"),
			BirthDate: birth,
			Gender:    entities.Gender(demographicGenderCodes.Label(row.Gender)),
		})
	}
	return out
}

// LocationNormalizer cleanses the ERP customer location feed: removes
// dashes from the id and maps country codes to canonical names.
type LocationNormalizer struct{}

// Normalize maps every bronze row to one cleansed row.
func (LocationNormalizer) Normalize(rows []entities.RawLocation) []entities.CustomerLocation {
	out := make([]entities.CustomerLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.CustomerLocation{
			CID:     strings.ReplaceAll(row.CID, "-", ""),
			Country: normalizeCountry(row.Country),
		})
	}
	return out
}

// normalizeCountry maps known codes to canonical names. Unlike the
// other categorical fields, unknown non-empty values pass through
// trimmed instead of collapsing to the sentinel.
func normalizeCountry(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cleanse.Unknown
	}
	if label, ok := countryCodes[strings.ToUpper(trimmed)]; ok {
		return label
	}
	return trimmed
}

// CategoryNormalizer cleanses the ERP product category feed: trims
// every string field, nothing else.
type CategoryNormalizer struct{}

// Normalize maps every bronze row to one cleansed row.
func (CategoryNormalizer) Normalize(rows []entities.RawCategory) []entities.ProductCategory {
	out := make([]entities.ProductCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ProductCategory{
			ID:          strings.TrimSpace(row.ID),
			Category:    strings.TrimSpace(row.Category),
			Subcategory: strings.TrimSpace(row.Subcategory),
			Maintenance: strings.TrimSpace(row.Maintenance),
		})
	}
	return out
}
