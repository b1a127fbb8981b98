package storage

import (
	"context"
	"testing"

	"vendora-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByMarketFiltersSales(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	_, err := repos.MarketSales.Add(ctx, models.MarketSale{MarketID: "m1", Description: "Mug", Amount: 8, Quantity: 2})
	require.NoError(t, err)
	_, err = repos.MarketSales.Add(ctx, models.MarketSale{MarketID: "m2", Description: "Bowl", Amount: 15, Quantity: 1})
	require.NoError(t, err)
	_, err = repos.MarketSales.Add(ctx, models.MarketSale{MarketID: "m1", Description: "Plate", Amount: 12, Quantity: 3})
	require.NoError(t, err)

	sales, err := repos.MarketSales.GetByMarket(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, sale := range sales {
		assert.Equal(t, "m1", sale.MarketID)
	}

	none, err := repos.MarketSales.GetByMarket(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteByMarketRemovesOnlyThatMarket(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	_, err := repos.MarketSales.Add(ctx, models.MarketSale{MarketID: "m1", Description: "Mug", Amount: 8, Quantity: 1})
	require.NoError(t, err)
	survivor, err := repos.MarketSales.Add(ctx, models.MarketSale{MarketID: "m2", Description: "Bowl", Amount: 15, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, repos.MarketSales.DeleteByMarket(ctx, "m1"))

	sales, err := repos.MarketSales.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, survivor.ID, sales[0].ID)
}

func TestMarketUpdatePartialMerge(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	created, err := repos.Markets.Add(ctx, models.MarketEvent{
		Name:     "Weihnachtsmarkt",
		Date:     "2025-12-06",
		Location: "Köln",
		StandFee: 80,
	})
	require.NoError(t, err)

	fee := 95.0
	updated, err := repos.Markets.Update(ctx, created.ID, MarketUpdate{StandFee: &fee})
	require.NoError(t, err)

	assert.Equal(t, 95.0, updated.StandFee)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
