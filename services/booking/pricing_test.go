package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNumeralIn(t *testing.T) {
	cases := map[string]int{
		"$45":              45,
		"from $40-60":      40,
		"NZ$120 (2 hours)": 120,
		"POA":              0,
		"":                 0,
		"$0":               0,
		"Free consult":     0,
		"$35.50":           35,
	}
	for label, want := range cases {
		assert.Equal(t, want, FirstNumeralIn(label), "label %q", label)
	}
	assert.Equal(t, 0, FirstNumeralIn("$99999999999999999999999"), "overflowing numeral")
}

func TestTotalAddsServiceAndAddOns(t *testing.T) {
	total := Total("$45", DefaultAddOns, []string{"gel-removal", "nail-art"})
	assert.Equal(t, 63, total)
}

func TestAddOnTotalIgnoresUnknownIDs(t *testing.T) {
	assert.Equal(t, 15, AddOnTotal(DefaultAddOns, []string{"hand-massage", "gold-leaf"}))
	assert.Equal(t, 0, AddOnTotal(DefaultAddOns, nil))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$95.00", FormatPrice("$", 95))
	assert.Equal(t, "NZ$0.00", FormatPrice("NZ$", 0))
}

func TestDefaultAddOnCatalogHasSevenUniqueEntries(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range DefaultAddOns {
		assert.False(t, seen[a.ID], "duplicate add-on %s", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, DefaultAddOns, 7)
}
