// controllers/order.go
package controllers

import (
	"net/http"

	"vendora-backend/models"
	"vendora-backend/storage"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// OrderItemInput defines the structure for an order line
type OrderItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"min=1"`
	Price    float64 `json:"price" binding:"min=0"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	CustomerName    string           `json:"customerName" binding:"required"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerAddress string           `json:"customerAddress"`
	Items           []OrderItemInput `json:"items" binding:"dive"`
	Status          string           `json:"status" binding:"omitempty,oneof=open paid shipped delivered cancelled"`
	Notes           string           `json:"notes"`
	OrderDate       string           `json:"orderDate"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order
type UpdateOrderInput struct {
	CustomerName    *string             `json:"customerName"`
	CustomerEmail   *string             `json:"customerEmail"`
	CustomerAddress *string             `json:"customerAddress"`
	Items           *[]models.OrderItem `json:"items"`
	Status          *string             `json:"status" binding:"omitempty,oneof=open paid shipped delivered cancelled"`
	Notes           *string             `json:"notes"`
	OrderDate       *string             `json:"orderDate"`
}

// CreateOrder adds a new order; id, invoice number, timestamps and the total
// are assigned by the repository.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order, err := Repos.Orders.Add(c.Request.Context(), models.Order{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		Items:           items,
		Status:          input.Status,
		Notes:           input.Notes,
		OrderDate:       input.OrderDate,
	})
	if err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders retrieves all orders, newest first.
func GetOrders(c *gin.Context) {
	orders, err := Repos.Orders.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func GetOrder(c *gin.Context) {
	order, err := Repos.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder applies a partial update; the total is recomputed when items
// change and updatedAt is always bumped.
func UpdateOrder(c *gin.Context) {
	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.CustomerName != nil && *input.CustomerName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name cannot be empty")
		return
	}

	order, err := Repos.Orders.Update(c.Request.Context(), c.Param("id"), storage.OrderUpdate{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		Items:           input.Items,
		Status:          input.Status,
		Notes:           input.Notes,
		OrderDate:       input.OrderDate,
	})
	if err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order. A missing id is not an error.
func DeleteOrder(c *gin.Context) {
	if err := Repos.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStorageError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
