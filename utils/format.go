// utils/format.go
package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount with two fixed decimals, a comma as the
// decimal separator and the symbol prefixed. No thousands separator.
func FormatCurrency(amount float64, symbol string) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	return symbol + strings.Replace(fixed, ".", ",", 1)
}

var amountCleaner = regexp.MustCompile(`[^0-9.,]`)

// ParseAmount reads a user-entered amount, accepting a comma or dot decimal
// separator, and rounds to two fractional digits. Unparseable input yields 0.
func ParseAmount(text string) float64 {
	cleaned := amountCleaner.ReplaceAllString(text, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return math.Round(value*100) / 100
}
