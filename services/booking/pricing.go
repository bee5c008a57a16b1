package booking

import (
	"strconv"

	"crownbeauty/models"

	"github.com/shopspring/decimal"
)

// FirstNumeralIn extracts the first run of decimal digits from a free-text
// price label. Labels without digits, or whose first run does not fit an int,
// price at 0. A range such as "$40-60" prices at its first number.
func FirstNumeralIn(text string) int {
	start := -1
	for i := 0; i < len(text); i++ {
		isDigit := text[i] >= '0' && text[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return parseNumeral(text[start:i])
		}
	}
	if start >= 0 {
		return parseNumeral(text[start:])
	}
	return 0
}

func parseNumeral(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// AddOnTotal sums the prices of the selected add-ons. Ids missing from the
// catalog contribute nothing.
func AddOnTotal(catalog []models.AddOn, ids []string) int {
	total := 0
	for _, id := range ids {
		if a, ok := FindAddOn(catalog, id); ok {
			total += a.Price
		}
	}
	return total
}

// Total is the service price plus every selected add-on.
func Total(priceLabel string, catalog []models.AddOn, ids []string) int {
	return FirstNumeralIn(priceLabel) + AddOnTotal(catalog, ids)
}

// FormatPrice renders a whole-unit amount as "$95.00".
func FormatPrice(symbol string, amount int) string {
	return symbol + decimal.NewFromInt(int64(amount)).StringFixed(2)
}
