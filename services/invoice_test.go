package services

import (
	"strings"
	"testing"

	"vendora-backend/models"
	"vendora-backend/utils"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:            "o1",
		CustomerName:  "Anna Schmidt",
		CustomerEmail: "anna@example.com",
		Items: []models.OrderItem{
			{ID: "i1", Name: "Candle", Quantity: 2, Price: 12.5},
			{ID: "i2", Name: "Mug", Quantity: 1, Price: 1209.5},
		},
		Status:        models.OrderStatusOpen,
		InvoiceNumber: "25-007",
		OrderDate:     "2025-03-09",
		Total:         1234.5,
	}
}

func sampleProfile() models.CompanyProfile {
	return models.CompanyProfile{
		Name:    "Vendora Studio",
		Address: "Musterstraße 1, 50667 Köln",
		Email:   "hello@vendora.test",
		TaxNote: "Gemäß § 19 UStG keine Umsatzsteuer",
	}
}

func TestInvoiceContainsCoreFields(t *testing.T) {
	html := GenerateInvoiceHTML(sampleOrder(), sampleProfile(), utils.InvoiceLabelsFor("de"))

	assert.Contains(t, html, "25-007")
	assert.Contains(t, html, "09.03.2025")
	assert.Contains(t, html, "Anna Schmidt")
	assert.Contains(t, html, "<h1>Vendora Studio</h1>")
	assert.Contains(t, html, "1234,50 €")
	assert.Contains(t, html, "12,50 €")
	assert.Contains(t, html, "25,00 €")
	assert.Contains(t, html, "Gemäß § 19 UStG keine Umsatzsteuer")
}

func TestInvoiceLanguageSelection(t *testing.T) {
	order := sampleOrder()
	profile := sampleProfile()

	de := GenerateInvoiceHTML(order, profile, utils.InvoiceLabelsFor("de"))
	assert.Contains(t, de, "<h2>Rechnung</h2>")
	assert.Contains(t, de, "Vielen Dank für Ihren Einkauf!")

	en := GenerateInvoiceHTML(order, profile, utils.InvoiceLabelsFor("en"))
	assert.Contains(t, en, "<h2>Invoice</h2>")
	assert.Contains(t, en, "Thank you for your purchase!")
	assert.NotContains(t, en, "Gesamtbetrag")
}

func TestInvoiceEscapesCustomerInput(t *testing.T) {
	order := sampleOrder()
	order.CustomerName = `Mal & <script>"x"</script>`

	html := GenerateInvoiceHTML(order, sampleProfile(), utils.InvoiceLabelsFor("de"))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Mal &amp; &lt;script&gt;&quot;x&quot;&lt;/script&gt;")
}

func TestInvoiceTurnsAddressNewlinesIntoBreaks(t *testing.T) {
	order := sampleOrder()
	order.CustomerAddress = "Hauptstraße 5\n50667 Köln"

	html := GenerateInvoiceHTML(order, sampleProfile(), utils.InvoiceLabelsFor("de"))
	assert.Contains(t, html, "Hauptstraße 5<br/>50667 Köln")
}

func TestInvoiceOmitsEmptyProfileBlocks(t *testing.T) {
	html := GenerateInvoiceHTML(sampleOrder(), models.CompanyProfile{}, utils.InvoiceLabelsFor("de"))

	assert.NotContains(t, html, "<h1>")
	assert.NotContains(t, html, "tax-note")
	assert.NotContains(t, html, "E-Mail:")
}

func TestFormatInvoiceDateLayouts(t *testing.T) {
	assert.Equal(t, "09.03.2025", formatInvoiceDate("2025-03-09"))
	assert.Equal(t, "09.03.2025", formatInvoiceDate("2025-03-09T14:30:00.000Z"))
	assert.Equal(t, "09.03.2025", formatInvoiceDate("2025-03-09T14:30:00Z"))
	// Unrecognizable input passes through untouched.
	assert.Equal(t, "soon", formatInvoiceDate("soon"))
}

func TestFormatEur(t *testing.T) {
	assert.Equal(t, "0,00 €", formatEur(0))
	assert.Equal(t, "12,50 €", formatEur(12.5))
	assert.Equal(t, "1234,50 €", formatEur(1234.5))
}

func TestInvoiceRendersOneRowPerItem(t *testing.T) {
	html := GenerateInvoiceHTML(sampleOrder(), sampleProfile(), utils.InvoiceLabelsFor("de"))
	assert.Equal(t, 2, strings.Count(html, `<td class="item-desc">`))
}
