package usecase

import (
	"sort"
	"strings"
	"time"

	"warehouse_silver/internal/domain/cleanse"
	"warehouse_silver/internal/domain/entities"
)

var (
	genderCodes = cleanse.CodeMap{
		"M": string(entities.GenderMale),
		"F": string(entities.GenderFemale),
	}
	maritalStatusCodes = cleanse.CodeMap{
		"M": string(entities.MaritalStatusMarried),
		"S": string(entities.MaritalStatusSingle),
	}
)

// CustomerResolver deduplicates bronze customer rows and standardizes
// their categorical fields. For each id the most recently created row
// survives; rows without an id are dropped outright.
type CustomerResolver struct {
	// TieBreak orders rows that share both an id and a create date.
	// When nil, ties keep the bronze input order, so reruns over the
	// same snapshot are deterministic.
	TieBreak func(a, b entities.RawCustomer) bool
}

// Resolve produces at most one cleansed record per customer id. Output
// group order follows first appearance in the input.
func (r CustomerResolver) Resolve(rows []entities.RawCustomer) []entities.CustomerRecord {
	type dated struct {
		row  entities.RawCustomer
		date *time.Time
	}

	groups := make(map[int][]dated)
	order := make([]int, 0, len(rows))
	for _, row := range rows {
		if row.ID == nil {
			continue
		}
		id := *row.ID
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], dated{row: row, date: cleanse.CastDate(row.CreateDate)})
	}

	out := make([]entities.CustomerRecord, 0, len(order))
	for _, id := range order {
		group := groups[id]
		// Most recent create date first; missing dates rank last. The
		// stable sort keeps input order for equal dates unless a
		// TieBreak is configured.
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i].date, group[j].date
			switch {
			case a == nil && b == nil:
				return r.TieBreak != nil && r.TieBreak(group[i].row, group[j].row)
			case a == nil:
				return false
			case b == nil:
				return true
			case a.After(*b):
				return true
			case b.After(*a):
				return false
			default:
				return r.TieBreak != nil && r.TieBreak(group[i].row, group[j].row)
			}
		})

		winner := group[0]
		out = append(out, entities.CustomerRecord{
			ID:            id,
			Key:           strings.TrimSpace(winner.row.Key),
			FirstName:     strings.TrimSpace(winner.row.FirstName),
			LastName:      strings.TrimSpace(winner.row.LastName),
			MaritalStatus: entities.MaritalStatus(maritalStatusCodes.Label(winner.row.MaritalStatus)),
			Gender:        entities.Gender(genderCodes.Label(winner.row.Gender)),
			CreateDate:    winner.date,
		})
	}
	return out
}
