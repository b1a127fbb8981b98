package storage

import (
	"context"
	"sync"

	"vendora-backend/models"
)

// OrderRepository provides CRUD over the single orders blob. Every write is a
// read-full-collection, mutate, write-full-collection cycle; the mutex keeps
// that cycle coherent within this process, nothing more (single active writer
// is an assumption, not a guarantee).
type OrderRepository struct {
	store   Store
	counter *InvoiceCounter
	mu      sync.Mutex
}

func NewOrderRepository(store Store, counter *InvoiceCounter) *OrderRepository {
	return &OrderRepository{store: store, counter: counter}
}

// OrderUpdate carries the fields of a partial update. Nil means "leave as is".
type OrderUpdate struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerAddress *string
	Items           *[]models.OrderItem
	Status          *string
	Notes           *string
	OrderDate       *string
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return loadCollection[models.Order](ctx, r.store, KeyOrders)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Add assigns id, invoice number and timestamps, computes the total and
// prepends the order (newest-first is the persisted order).
func (r *OrderRepository) Add(ctx context.Context, order models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.GetAll(ctx)
	if err != nil {
		return models.Order{}, err
	}
	invoiceNumber, err := r.counter.Next(ctx)
	if err != nil {
		return models.Order{}, err
	}

	now := nowISO()
	order.ID = GenerateID()
	order.InvoiceNumber = invoiceNumber
	order.Total = models.ItemsTotal(order.Items)
	if order.OrderDate == "" {
		order.OrderDate = now
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = models.OrderStatusOpen
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = GenerateID()
		}
	}

	orders = append([]models.Order{order}, orders...)
	if err := saveCollection(ctx, r.store, KeyOrders, orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Update shallow-merges the set fields over the stored order, recomputes the
// total when items change and always bumps updatedAt.
func (r *OrderRepository) Update(ctx context.Context, id string, update OrderUpdate) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.GetAll(ctx)
	if err != nil {
		return models.Order{}, err
	}
	index := -1
	for i, order := range orders {
		if order.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Order{}, ErrNotFound
	}

	order := orders[index]
	if update.CustomerName != nil {
		order.CustomerName = *update.CustomerName
	}
	if update.CustomerEmail != nil {
		order.CustomerEmail = *update.CustomerEmail
	}
	if update.CustomerAddress != nil {
		order.CustomerAddress = *update.CustomerAddress
	}
	if update.Items != nil {
		order.Items = *update.Items
		for i := range order.Items {
			if order.Items[i].ID == "" {
				order.Items[i].ID = GenerateID()
			}
		}
		order.Total = models.ItemsTotal(order.Items)
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.Notes != nil {
		order.Notes = *update.Notes
	}
	if update.OrderDate != nil {
		order.OrderDate = *update.OrderDate
	}
	order.UpdatedAt = nowISO()

	orders[index] = order
	if err := saveCollection(ctx, r.store, KeyOrders, orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Delete filters the order out. A missing id is a silent no-op.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := orders[:0]
	for _, order := range orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	return saveCollection(ctx, r.store, KeyOrders, kept)
}

// ReplaceAll overwrites the whole collection. Used by backup import.
func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveCollection(ctx, r.store, KeyOrders, orders)
}
