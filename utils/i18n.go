// utils/i18n.go
package utils

// InvoiceLabels is the localized label set embedded into generated invoices.
type InvoiceLabels struct {
	Title     string
	Number    string
	Date      string
	To        string
	Item      string
	Qty       string
	UnitPrice string
	Amount    string
	Total     string
	ThankYou  string
}

var invoiceLabelsDE = InvoiceLabels{
	Title:     "Rechnung",
	Number:    "Rechnungsnr.:",
	Date:      "Datum:",
	To:        "Rechnung an",
	Item:      "Artikel",
	Qty:       "Menge",
	UnitPrice: "Einzelpreis",
	Amount:    "Betrag",
	Total:     "Gesamtbetrag",
	ThankYou:  "Vielen Dank für Ihren Einkauf!",
}

var invoiceLabelsEN = InvoiceLabels{
	Title:     "Invoice",
	Number:    "Invoice no.:",
	Date:      "Date:",
	To:        "Invoice to",
	Item:      "Item",
	Qty:       "Qty",
	UnitPrice: "Unit price",
	Amount:    "Amount",
	Total:     "Total",
	ThankYou:  "Thank you for your purchase!",
}

var monthsDE = [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
var monthsEN = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// InvoiceLabelsFor returns the label set for a language code. German is the
// default for anything unknown.
func InvoiceLabelsFor(language string) InvoiceLabels {
	if language == "en" {
		return invoiceLabelsEN
	}
	return invoiceLabelsDE
}

// MonthLabels returns the short month names for the dashboard chart.
func MonthLabels(language string) [12]string {
	if language == "en" {
		return monthsEN
	}
	return monthsDE
}
