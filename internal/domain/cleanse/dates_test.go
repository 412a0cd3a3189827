package cleanse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompactDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		cases := map[string]string{
			"20240101":   "2024-01-01",
			"19000101":   "1900-01-01",
			"20500101":   "2050-01-01",
			"20240229":   "2024-02-29",
			" 20240101 ": "2024-01-01",
		}
		for raw, want := range cases {
			got := ParseCompactDate(raw)
			require.NotNil(t, got, "raw %q", raw)
			assert.Equal(t, want, got.Format("2006-01-02"), "raw %q", raw)
		}
	})

	t.Run("rejected values", func(t *testing.T) {
		cases := []string{
			"",
			"0",
			"20240230",  // Feb 30
			"20241301",  // month 13
			"20240132",  // day 32
			"18991231",  // below range floor
			"20500102",  // above range ceiling
			"123456789", // too long
			"2024",      // pads to 00002024, below floor
			"abcdefgh",
			"2024-01-01",
		}
		for _, raw := range cases {
			assert.Nil(t, ParseCompactDate(raw), "raw %q", raw)
		}
	})

	t.Run("left pads short numerics", func(t *testing.T) {
		// 7-digit value padded to 8 still has to survive the range
		// check, so only garbage comes out of this path in practice.
		assert.Nil(t, ParseCompactDate("1234567"))
	})
}

func TestCastDate(t *testing.T) {
	got := CastDate("2025-06-15")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, CastDate(""))
	assert.Nil(t, CastDate("   "))
	assert.Nil(t, CastDate("2025-13-01"))
	assert.Nil(t, CastDate("not a date"))
	assert.Nil(t, CastDate("20250615"))
}
