package storage

import (
	"context"
	"sync"

	"vendora-backend/models"
)

// MarketSaleRepository provides add/list/delete over the market sales blob.
// Sales carry a marketId foreign key; there is no persisted index, reads by
// market are an O(n) scan.
type MarketSaleRepository struct {
	store Store
	mu    sync.Mutex
}

func NewMarketSaleRepository(store Store) *MarketSaleRepository {
	return &MarketSaleRepository{store: store}
}

func (r *MarketSaleRepository) GetAll(ctx context.Context) ([]models.MarketSale, error) {
	return loadCollection[models.MarketSale](ctx, r.store, KeyMarketSales)
}

func (r *MarketSaleRepository) GetByMarket(ctx context.Context, marketID string) ([]models.MarketSale, error) {
	sales, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.MarketSale{}
	for _, sale := range sales {
		if sale.MarketID == marketID {
			matched = append(matched, sale)
		}
	}
	return matched, nil
}

func (r *MarketSaleRepository) Add(ctx context.Context, sale models.MarketSale) (models.MarketSale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.GetAll(ctx)
	if err != nil {
		return models.MarketSale{}, err
	}
	sale.ID = GenerateID()
	sale.CreatedAt = nowISO()

	sales = append([]models.MarketSale{sale}, sales...)
	if err := saveCollection(ctx, r.store, KeyMarketSales, sales); err != nil {
		return models.MarketSale{}, err
	}
	return sale, nil
}

func (r *MarketSaleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := sales[:0]
	for _, sale := range sales {
		if sale.ID != id {
			kept = append(kept, sale)
		}
	}
	return saveCollection(ctx, r.store, KeyMarketSales, kept)
}

// DeleteByMarket removes every sale belonging to the market. Deleting a
// market does not cascade inside the repository; callers use this instead.
func (r *MarketSaleRepository) DeleteByMarket(ctx context.Context, marketID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := sales[:0]
	for _, sale := range sales {
		if sale.MarketID != marketID {
			kept = append(kept, sale)
		}
	}
	return saveCollection(ctx, r.store, KeyMarketSales, kept)
}

func (r *MarketSaleRepository) ReplaceAll(ctx context.Context, sales []models.MarketSale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveCollection(ctx, r.store, KeyMarketSales, sales)
}
