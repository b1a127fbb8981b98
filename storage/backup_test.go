package storage

import (
	"context"
	"encoding/json"
	"testing"

	"vendora-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T, repos *Repositories) {
	t.Helper()
	ctx := context.Background()

	_, err := repos.Orders.Add(ctx, models.Order{
		CustomerName: "Anna Schmidt",
		Items:        []models.OrderItem{{Name: "Candle", Quantity: 2, Price: 12.5}},
	})
	require.NoError(t, err)

	market, err := repos.Markets.Add(ctx, models.MarketEvent{
		Name: "Flohmarkt", Date: "2025-05-10", StandFee: 40, TravelCost: 12,
	})
	require.NoError(t, err)

	_, err = repos.MarketSales.Add(ctx, models.MarketSale{
		MarketID: market.ID, Description: "Mug", Amount: 8, Quantity: 3,
	})
	require.NoError(t, err)

	_, err = repos.Expenses.Add(ctx, models.Expense{
		Description: "Wool", Amount: 19.99, Category: "Materials", ExpenseDate: "2025-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, repos.Profile.Save(ctx, models.CompanyProfile{
		Name: "Vendora Studio", Email: "hello@vendora.test", TaxNote: "Gemäß § 19 UStG keine Umsatzsteuer",
	}))
	require.NoError(t, repos.Settings.Save(ctx, models.AppSettings{Theme: "dark", Currency: "€"}))
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestRepos()
	populate(t, source)
	ctx := context.Background()

	exported, err := source.ExportAll(ctx)
	require.NoError(t, err)

	target := newTestRepos()
	require.NoError(t, target.ImportAll(ctx, exported))

	sourceOrders, err := source.Orders.GetAll(ctx)
	require.NoError(t, err)
	targetOrders, err := target.Orders.GetAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, sourceOrders, targetOrders)

	sourceMarkets, _ := source.Markets.GetAll(ctx)
	targetMarkets, _ := target.Markets.GetAll(ctx)
	assert.ElementsMatch(t, sourceMarkets, targetMarkets)

	sourceSales, _ := source.MarketSales.GetAll(ctx)
	targetSales, _ := target.MarketSales.GetAll(ctx)
	assert.ElementsMatch(t, sourceSales, targetSales)

	sourceExpenses, _ := source.Expenses.GetAll(ctx)
	targetExpenses, _ := target.Expenses.GetAll(ctx)
	assert.ElementsMatch(t, sourceExpenses, targetExpenses)

	sourceProfile, _ := source.Profile.Get(ctx)
	targetProfile, _ := target.Profile.Get(ctx)
	assert.Equal(t, sourceProfile, targetProfile)

	sourceCounter, _ := source.Counter.Current(ctx)
	targetCounter, _ := target.Counter.Current(ctx)
	assert.Equal(t, sourceCounter, targetCounter)
}

func TestExportEnvelopeShape(t *testing.T) {
	repos := newTestRepos()
	populate(t, repos)

	exported, err := repos.ExportAll(context.Background())
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(exported), &envelope))
	assert.Contains(t, envelope, "version")
	assert.Contains(t, envelope, "exportDate")
	assert.Contains(t, envelope, "data")

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	for _, section := range []string{"orders", "markets", "marketSales", "expenses", "profile", "settings", "invoiceCounter"} {
		assert.Contains(t, data, section)
	}
}

func TestImportLeavesAbsentSectionsUntouched(t *testing.T) {
	repos := newTestRepos()
	populate(t, repos)
	ctx := context.Background()

	partial := `{
  "version": 1,
  "exportDate": "2025-08-01T00:00:00.000Z",
  "data": {
    "expenses": [
      {"id": "x1", "description": "Imported", "amount": 3.5, "category": "Other", "date": "", "expenseDate": "2025-07-01", "createdAt": "2025-07-01T10:00:00.000Z"}
    ]
  }
}`
	require.NoError(t, repos.ImportAll(ctx, partial))

	expenses, err := repos.Expenses.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Imported", expenses[0].Description)

	// Orders were absent from the input and survive unchanged.
	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	repos := newTestRepos()

	err := repos.ImportAll(context.Background(), "{broken")
	assert.ErrorIs(t, err, ErrParse)
}

func TestResetAllClearsEveryKey(t *testing.T) {
	repos := newTestRepos()
	populate(t, repos)
	ctx := context.Background()

	require.NoError(t, repos.ResetAll(ctx))

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	profile, err := repos.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CompanyProfile{}, profile)

	settings, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	counter, err := repos.Counter.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counter)
}
