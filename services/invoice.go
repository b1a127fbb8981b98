// services/invoice.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"vendora-backend/models"
	"vendora-backend/utils"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "<br/>",
)

// escapeHTML guards free-text fields against structural injection and turns
// embedded newlines into line breaks.
func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// formatEur renders amounts inside the document: two fixed decimals, comma
// separator, euro suffix.
func formatEur(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	return strings.Replace(fixed, ".", ",", 1) + " €"
}

// formatInvoiceDate renders the order date as DD.MM.YYYY, falling back to
// the raw string when it is not a recognizable date.
func formatInvoiceDate(date string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return date
}

// GenerateInvoiceHTML maps an order and the company profile into a
// self-contained printable document. Pure function; the caller decides what
// to do with the string.
func GenerateInvoiceHTML(order models.Order, profile models.CompanyProfile, labels utils.InvoiceLabels) string {
	dateStr := formatInvoiceDate(order.EffectiveDate())

	var itemRows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&itemRows, `
      <tr>
        <td class="item-desc">%s</td>
        <td class="item-qty">%d</td>
        <td class="item-price">%s</td>
        <td class="item-total">%s</td>
      </tr>`,
			escapeHTML(item.Name),
			item.Quantity,
			formatEur(item.Price),
			formatEur(item.Price*float64(item.Quantity)),
		)
	}

	var companyName string
	if profile.Name != "" {
		companyName = "<h1>" + escapeHTML(profile.Name) + "</h1>"
	}
	var companyDetails strings.Builder
	if profile.Address != "" {
		companyDetails.WriteString(escapeHTML(profile.Address) + "<br/>")
	}
	if profile.Email != "" {
		companyDetails.WriteString("E-Mail: " + escapeHTML(profile.Email))
	}
	if profile.Phone != "" {
		companyDetails.WriteString("<br/>" + escapeHTML(profile.Phone))
	}

	var recipientDetail strings.Builder
	if order.CustomerAddress != "" {
		recipientDetail.WriteString(escapeHTML(order.CustomerAddress))
	}
	if order.CustomerEmail != "" {
		if order.CustomerAddress != "" {
			recipientDetail.WriteString("<br/>")
		}
		recipientDetail.WriteString(escapeHTML(order.CustomerEmail))
	}

	var taxNote string
	if profile.TaxNote != "" {
		taxNote = `<div class="tax-note">` + escapeHTML(profile.TaxNote) + `</div>`
	}

	return `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<style>
  @page { margin: 30mm 20mm 25mm 20mm; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
    color: #333;
    font-size: 12px;
    line-height: 1.5;
    padding: 40px 48px;
    background: #fff;
    position: relative;
    min-height: 100vh;
  }
  .page-wrapper {
    display: flex;
    flex-direction: column;
    min-height: calc(100vh - 80px);
  }
  .content { flex: 1; }
  .header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    margin-bottom: 48px;
  }
  .company-block h1 {
    font-size: 26px;
    font-weight: 800;
    color: #1a2744;
    margin-bottom: 4px;
    line-height: 1.2;
  }
  .company-block .company-details {
    font-size: 11px;
    color: #666;
    line-height: 1.6;
  }
  .invoice-title-block { text-align: right; }
  .invoice-title-block h2 {
    font-size: 28px;
    font-weight: 800;
    color: #1a2744;
    letter-spacing: 1px;
    margin-bottom: 6px;
  }
  .invoice-meta {
    font-size: 11px;
    color: #555;
    line-height: 1.8;
  }
  .invoice-meta span {
    color: #333;
    font-weight: 600;
  }
  .recipient-section { margin-bottom: 36px; }
  .recipient-box {
    border: 1px solid #ccc;
    border-radius: 4px;
    padding: 14px 18px;
    display: inline-block;
    min-width: 240px;
  }
  .recipient-label {
    font-size: 10px;
    color: #888;
    margin-bottom: 6px;
  }
  .recipient-name {
    font-size: 15px;
    font-weight: 700;
    color: #1a2744;
    margin-bottom: 2px;
  }
  .recipient-detail {
    font-size: 12px;
    color: #555;
    line-height: 1.6;
  }
  table {
    width: 100%;
    border-collapse: collapse;
    margin-bottom: 16px;
  }
  thead tr { background: #1a2744; }
  thead th {
    color: #fff;
    font-size: 11px;
    font-weight: 600;
    padding: 10px 14px;
    text-align: left;
  }
  thead th.item-qty,
  thead th.item-price,
  thead th.item-total { text-align: right; }
  tbody td {
    padding: 12px 14px;
    font-size: 12px;
    border-bottom: 1px solid #e8e8e8;
    color: #444;
  }
  tbody td.item-qty,
  tbody td.item-price,
  tbody td.item-total {
    text-align: right;
    font-variant-numeric: tabular-nums;
  }
  tbody tr:last-child td { border-bottom: 2px solid #1a2744; }
  .total-row {
    display: flex;
    justify-content: flex-end;
    margin-top: 8px;
    margin-bottom: 32px;
  }
  .total-label {
    font-size: 14px;
    font-weight: 700;
    color: #333;
    margin-right: 16px;
  }
  .total-value {
    font-size: 16px;
    font-weight: 800;
    color: #1a2744;
  }
  .footer-section {
    margin-top: auto;
    padding-top: 40px;
    text-align: center;
    border-top: 1px solid #e0e0e0;
  }
  .tax-note {
    font-size: 11px;
    font-weight: 700;
    color: #333;
    margin-bottom: 6px;
  }
  .thank-you {
    font-size: 11px;
    color: #888;
    font-style: italic;
  }
</style>
</head>
<body>
  <div class="page-wrapper">
    <div class="content">

      <div class="header">
        <div class="company-block">
          ` + companyName + `
          <div class="company-details">
            ` + companyDetails.String() + `
          </div>
        </div>
        <div class="invoice-title-block">
          <h2>` + escapeHTML(labels.Title) + `</h2>
          <div class="invoice-meta">
            ` + escapeHTML(labels.Number) + ` <span>` + escapeHTML(order.InvoiceNumber) + `</span><br/>
            ` + escapeHTML(labels.Date) + ` <span>` + dateStr + `</span>
          </div>
        </div>
      </div>

      <div class="recipient-section">
        <div class="recipient-box">
          <div class="recipient-label">` + escapeHTML(labels.To) + `:</div>
          <div class="recipient-name">` + escapeHTML(order.CustomerName) + `</div>
          <div class="recipient-detail">
            ` + recipientDetail.String() + `
          </div>
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th>` + escapeHTML(labels.Item) + `</th>
            <th class="item-qty">` + escapeHTML(labels.Qty) + `</th>
            <th class="item-price">` + escapeHTML(labels.UnitPrice) + `</th>
            <th class="item-total">` + escapeHTML(labels.Amount) + `</th>
          </tr>
        </thead>
        <tbody>
          ` + itemRows.String() + `
        </tbody>
      </table>

      <div class="total-row">
        <span class="total-label">` + escapeHTML(labels.Total) + `:</span>
        <span class="total-value">` + formatEur(order.Total) + `</span>
      </div>

    </div>

    <div class="footer-section">
      ` + taxNote + `
      <div class="thank-you">` + escapeHTML(labels.ThankYou) + `</div>
    </div>
  </div>
</body>
</html>`
}
