// controllers/invoice.go
package controllers

import (
	"net/http"

	"vendora-backend/services"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetOrderInvoice renders the printable invoice document for an order. The
// display language follows the persisted setting unless overridden with
// ?lang=de|en.
func GetOrderInvoice(c *gin.Context) {
	ctx := c.Request.Context()

	order, err := Repos.Orders.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}

	profile, err := Repos.Profile.Get(ctx)
	if err != nil {
		respondStorageError(c, err, "Profile not found")
		return
	}

	language := c.Query("lang")
	if language != "de" && language != "en" {
		language, err = Repos.Settings.Language(ctx)
		if err != nil {
			respondStorageError(c, err, "Settings not found")
			return
		}
	}

	html := services.GenerateInvoiceHTML(order, profile, utils.InvoiceLabelsFor(language))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
