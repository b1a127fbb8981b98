package models

// ExpenseCategories is the fixed list the UI offers. Storage accepts any
// string; unknown categories still aggregate under their own name.
var ExpenseCategories = []string{
	"Materials",
	"Shipping",
	"Subscriptions",
	"Tools",
	"Marketing",
	"Packaging",
	"Other",
}

// Expense is a business expense. Date is a legacy field kept for records
// written before expenseDate existed; readers fall back to it.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	ExpenseDate string  `json:"expenseDate"`
	CreatedAt   string  `json:"createdAt"`
}

// EffectiveDate returns the canonical expense date, falling back to the
// legacy date field.
func (e Expense) EffectiveDate() string {
	if e.ExpenseDate != "" {
		return e.ExpenseDate
	}
	return e.Date
}
