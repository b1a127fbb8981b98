package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vendora-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos() *Repositories {
	return NewRepositories(NewMemStore())
}

func TestAddOrderComputesTotal(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	order, err := repos.Orders.Add(ctx, models.Order{
		CustomerName: "Anna Schmidt",
		Items: []models.OrderItem{
			{Name: "Candle", Quantity: 3, Price: 12.5},
			{Name: "Soap", Quantity: 2, Price: 4.25},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 46.0, order.Total)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.CreatedAt)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Equal(t, models.OrderStatusOpen, order.Status)

	stored, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, order.Total, stored[0].Total)
}

func TestAddOrderPrependsNewest(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	first, err := repos.Orders.Add(ctx, models.Order{CustomerName: "First"})
	require.NoError(t, err)
	second, err := repos.Orders.Add(ctx, models.Order{CustomerName: "Second"})
	require.NoError(t, err)

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestInvoiceNumbersAreSequential(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()
	yearPrefix := time.Now().Format("06")

	for i := 1; i <= 5; i++ {
		order, err := repos.Orders.Add(ctx, models.Order{CustomerName: "Customer"})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s-%03d", yearPrefix, i), order.InvoiceNumber)
	}
}

func TestUpdateStatusChangesOnlyStatusAndUpdatedAt(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	created, err := repos.Orders.Add(ctx, models.Order{
		CustomerName:    "Anna Schmidt",
		CustomerEmail:   "anna@example.com",
		CustomerAddress: "Hauptstraße 1",
		Notes:           "gift wrap",
		Items:           []models.OrderItem{{Name: "Candle", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	paid := models.OrderStatusPaid
	updated, err := repos.Orders.Update(ctx, created.ID, OrderUpdate{Status: &paid})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPaid, updated.Status)
	expected := created
	expected.Status = updated.Status
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, expected, updated)
}

func TestUpdateItemsRecomputesTotal(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	created, err := repos.Orders.Add(ctx, models.Order{
		CustomerName: "Anna Schmidt",
		Items:        []models.OrderItem{{Name: "Candle", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, created.Total)

	items := []models.OrderItem{
		{Name: "Candle", Quantity: 2, Price: 10},
		{Name: "Soap", Quantity: 1, Price: 5},
	}
	updated, err := repos.Orders.Update(ctx, created.ID, OrderUpdate{Items: &items})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Total)
}

func TestUpdateMissingOrderReturnsNotFound(t *testing.T) {
	repos := newTestRepos()

	paid := models.OrderStatusPaid
	_, err := repos.Orders.Update(context.Background(), "missing", OrderUpdate{Status: &paid})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	created, err := repos.Orders.Add(ctx, models.Order{CustomerName: "Anna"})
	require.NoError(t, err)

	require.NoError(t, repos.Orders.Delete(ctx, created.ID))

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestDeleteMissingOrderIsNoOp(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	created, err := repos.Orders.Add(ctx, models.Order{CustomerName: "Anna"})
	require.NoError(t, err)

	require.NoError(t, repos.Orders.Delete(ctx, "missing"))

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
}

func TestGetAllEmptyStore(t *testing.T) {
	repos := newTestRepos()

	orders, err := repos.Orders.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetAllMalformedBlob(t *testing.T) {
	store := NewMemStore()
	repos := NewRepositories(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyOrders, "{not json"))

	_, err := repos.Orders.GetAll(ctx)
	assert.ErrorIs(t, err, ErrParse)
}
