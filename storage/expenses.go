package storage

import (
	"context"
	"strings"
	"sync"

	"vendora-backend/models"
)

// ExpenseRepository provides add/list/delete over the expenses blob.
type ExpenseRepository struct {
	store Store
	mu    sync.Mutex
}

func NewExpenseRepository(store Store) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	return loadCollection[models.Expense](ctx, r.store, KeyExpenses)
}

// Add normalizes the date fields: expenseDate falls back to the legacy date
// field, then to the creation day. The legacy field stays untouched on the
// record itself so old backups re-import byte-identically.
func (r *ExpenseRepository) Add(ctx context.Context, expense models.Expense) (models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses, err := r.GetAll(ctx)
	if err != nil {
		return models.Expense{}, err
	}
	now := nowISO()
	expense.ID = GenerateID()
	expense.CreatedAt = now
	if expense.ExpenseDate == "" {
		if expense.Date != "" {
			expense.ExpenseDate = expense.Date
		} else {
			expense.ExpenseDate, _, _ = strings.Cut(now, "T")
		}
	}

	expenses = append([]models.Expense{expense}, expenses...)
	if err := saveCollection(ctx, r.store, KeyExpenses, expenses); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := expenses[:0]
	for _, expense := range expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}
	return saveCollection(ctx, r.store, KeyExpenses, kept)
}

func (r *ExpenseRepository) ReplaceAll(ctx context.Context, expenses []models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveCollection(ctx, r.store, KeyExpenses, expenses)
}
