// controllers/expense.go
package controllers

import (
	"net/http"

	"vendora-backend/models"
	"vendora-backend/services"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateExpenseInput defines the expected JSON structure for recording an expense
type CreateExpenseInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expenseDate"`
}

// CreateExpense records a business expense. Category is free text in
// storage; the UI constrains it to the fixed list.
func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Category == "" {
		input.Category = "Other"
	}

	expense, err := Repos.Expenses.Add(c.Request.Context(), models.Expense{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		ExpenseDate: input.ExpenseDate,
	})
	if err != nil {
		respondStorageError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves all expenses, newest first.
func GetExpenses(c *gin.Context) {
	expenses, err := Repos.Expenses.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetExpenseSummary returns the overall total and per-category totals with
// zero-sum categories dropped.
func GetExpenseSummary(c *gin.Context) {
	expenses, err := Repos.Expenses.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Expense not found")
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"byCategory": services.ExpenseCategoryTotals(expenses),
	})
}

// DeleteExpense removes an expense. A missing id is not an error.
func DeleteExpense(c *gin.Context) {
	if err := Repos.Expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStorageError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
