package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "€10,00", FormatCurrency(10, "€"))
	assert.Equal(t, "€12,34", FormatCurrency(12.34, "€"))
	assert.Equal(t, "$0,50", FormatCurrency(0.5, "$"))
	assert.Equal(t, "€1234,50", FormatCurrency(1234.5, "€"))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.34, ParseAmount("12,34"))
	assert.Equal(t, 12.34, ParseAmount("12.34"))
	assert.Equal(t, 19.99, ParseAmount("19,99 €"))
	assert.Equal(t, 5.0, ParseAmount("5"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
}

func TestInvoiceLabelsDefaultToGerman(t *testing.T) {
	assert.Equal(t, "Rechnung", InvoiceLabelsFor("de").Title)
	assert.Equal(t, "Invoice", InvoiceLabelsFor("en").Title)
	assert.Equal(t, "Rechnung", InvoiceLabelsFor("fr").Title)
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "Mär", MonthLabels("de")[2])
	assert.Equal(t, "Mar", MonthLabels("en")[2])
	assert.Equal(t, "Dez", MonthLabels("")[11])
}
