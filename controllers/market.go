// controllers/market.go
package controllers

import (
	"net/http"

	"vendora-backend/models"
	"vendora-backend/services"
	"vendora-backend/storage"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateMarketInput defines the expected JSON structure for creating a market event
type CreateMarketInput struct {
	Name       string  `json:"name" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Location   string  `json:"location"`
	StandFee   float64 `json:"standFee" binding:"min=0"`
	TravelCost float64 `json:"travelCost" binding:"min=0"`
	Notes      string  `json:"notes"`
}

// UpdateMarketInput defines the expected JSON structure for updating a market event
type UpdateMarketInput struct {
	Name       *string  `json:"name"`
	Date       *string  `json:"date"`
	Location   *string  `json:"location"`
	StandFee   *float64 `json:"standFee"`
	TravelCost *float64 `json:"travelCost"`
	Notes      *string  `json:"notes"`
}

// CreateMarketSaleInput defines the expected JSON structure for recording a sale
type CreateMarketSaleInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=1"`
}

// CreateMarket adds a new market event.
func CreateMarket(c *gin.Context) {
	var input CreateMarketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	market, err := Repos.Markets.Add(c.Request.Context(), models.MarketEvent{
		Name:       input.Name,
		Date:       input.Date,
		Location:   input.Location,
		StandFee:   input.StandFee,
		TravelCost: input.TravelCost,
		Notes:      input.Notes,
	})
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	c.JSON(http.StatusCreated, market)
}

// GetMarkets retrieves all market events, newest first.
func GetMarkets(c *gin.Context) {
	markets, err := Repos.Markets.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}
	c.JSON(http.StatusOK, markets)
}

// GetMarket retrieves one market event together with its sales and the
// computed sales/costs/profit summary.
func GetMarket(c *gin.Context) {
	ctx := c.Request.Context()

	market, err := Repos.Markets.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	sales, err := Repos.MarketSales.GetByMarket(ctx, market.ID)
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"market":  market,
		"sales":   sales,
		"summary": services.SummarizeMarket(market, sales),
	})
}

// UpdateMarket applies a partial update to a market event.
func UpdateMarket(c *gin.Context) {
	var input UpdateMarketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Name != nil && *input.Name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Market name cannot be empty")
		return
	}

	market, err := Repos.Markets.Update(c.Request.Context(), c.Param("id"), storage.MarketUpdate{
		Name:       input.Name,
		Date:       input.Date,
		Location:   input.Location,
		StandFee:   input.StandFee,
		TravelCost: input.TravelCost,
		Notes:      input.Notes,
	})
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	c.JSON(http.StatusOK, market)
}

// DeleteMarket removes a market event and its sales. The repository does not
// cascade, so the sales are removed here.
func DeleteMarket(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := Repos.Markets.Delete(ctx, id); err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}
	if err := Repos.MarketSales.DeleteByMarket(ctx, id); err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Market deleted successfully"})
}

// GetMarketSales lists the sales recorded for one market.
func GetMarketSales(c *gin.Context) {
	sales, err := Repos.MarketSales.GetByMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// CreateMarketSale records a sale at a market.
func CreateMarketSale(c *gin.Context) {
	ctx := c.Request.Context()
	marketID := c.Param("id")

	// The market must exist; sales carry its id as a foreign key.
	if _, err := Repos.Markets.GetByID(ctx, marketID); err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	var input CreateMarketSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sale, err := Repos.MarketSales.Add(ctx, models.MarketSale{
		MarketID:    marketID,
		Description: input.Description,
		Amount:      input.Amount,
		Quantity:    input.Quantity,
	})
	if err != nil {
		respondStorageError(c, err, "Market not found")
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// DeleteMarketSale removes a single sale. A missing id is not an error.
func DeleteMarketSale(c *gin.Context) {
	if err := Repos.MarketSales.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStorageError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
