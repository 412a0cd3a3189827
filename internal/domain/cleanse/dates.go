package cleanse

import (
	"strconv"
	"strings"
	"time"
)

const (
	compactLayout = "20060102"
	plainLayout   = "2006-01-02"

	// Plausible calendar range for compact dates; anything outside is
	// treated as garbage rather than parsed.
	compactFloor = "19000101"
	compactCeil  = "20500101"
)

// ParseCompactDate parses a date encoded as an 8-digit YYYYMMDD integer
// or string. Values that are zero, the wrong length after left-padding,
// outside [19000101, 20500101], or not a real calendar date (month 13,
// Feb 30) all come back nil. It never returns an error.
func ParseCompactDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && n == 0 {
		return nil
	}
	if len(s) < 8 {
		s = strings.Repeat("0", 8-len(s)) + s
	}
	if len(s) != 8 || s < compactFloor || s > compactCeil {
		return nil
	}
	t, err := time.Parse(compactLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// CastDate casts a plain YYYY-MM-DD value to a date, nil when it does
// not parse.
func CastDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := time.Parse(plainLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
