// controllers/dashboard.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"vendora-backend/services"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns revenue, expenses, profit, order counts and
// the monthly series. ?year=YYYY restricts the view to one calendar year;
// without it the monthly series covers the trailing six months.
func GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()

	var year *int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = &parsed
	}

	orders, err := Repos.Orders.GetAll(ctx)
	if err != nil {
		respondStorageError(c, err, "Orders not found")
		return
	}
	markets, err := Repos.Markets.GetAll(ctx)
	if err != nil {
		respondStorageError(c, err, "Markets not found")
		return
	}
	sales, err := Repos.MarketSales.GetAll(ctx)
	if err != nil {
		respondStorageError(c, err, "Sales not found")
		return
	}
	expenses, err := Repos.Expenses.GetAll(ctx)
	if err != nil {
		respondStorageError(c, err, "Expenses not found")
		return
	}

	language, err := Repos.Settings.Language(ctx)
	if err != nil {
		respondStorageError(c, err, "Settings not found")
		return
	}

	summary := services.BuildDashboard(services.DashboardInput{
		Orders:   orders,
		Markets:  markets,
		Sales:    sales,
		Expenses: expenses,
	}, year, time.Now(), utils.MonthLabels(language))

	c.JSON(http.StatusOK, summary)
}
