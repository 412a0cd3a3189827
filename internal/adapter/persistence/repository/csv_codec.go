package repository

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// record is one parsed CSV row with header-based field access. Lookups
// never fail: absent columns and unparseable numerics read as empty /
// nil, matching the looseness of the bronze layer.
type record struct {
	header map[string]int
	fields []string
}

func parseRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	recs := make([]record, 0, len(rows)-1)
	for _, fields := range rows[1:] {
		recs = append(recs, record{header: header, fields: fields})
	}
	return recs, nil
}

// str returns the raw cell value, whitespace preserved.
func (r record) str(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r record) intPtr(col string) *int {
	s := strings.TrimSpace(r.str(col))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func (r record) floatPtr(col string) *float64 {
	s := strings.TrimSpace(r.str(col))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
