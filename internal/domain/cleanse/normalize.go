// Package cleanse holds the shared field-cleansing primitives used by
// every resolver: categorical code mapping and strict date parsing.
package cleanse

import "strings"

// Unknown is the sentinel substituted for unrecognized or missing
// categorical values.
const Unknown = "n/a"

// CodeMap maps an uppercase, trimmed categorical code to its canonical
// label.
type CodeMap map[string]string

// Label resolves a raw categorical value against the map. The lookup is
// case- and surrounding-whitespace-insensitive; labels come back
// verbatim. Unmatched input yields Unknown.
func (m CodeMap) Label(raw string) string {
	if label, ok := m[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return label
	}
	return Unknown
}
