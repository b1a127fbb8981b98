package storage

import (
	"context"
	"sync"

	"vendora-backend/models"
)

// MarketRepository provides CRUD over the market events blob.
type MarketRepository struct {
	store Store
	mu    sync.Mutex
}

func NewMarketRepository(store Store) *MarketRepository {
	return &MarketRepository{store: store}
}

// MarketUpdate carries the fields of a partial update. Nil means "leave as is".
type MarketUpdate struct {
	Name       *string
	Date       *string
	Location   *string
	StandFee   *float64
	TravelCost *float64
	Notes      *string
}

func (r *MarketRepository) GetAll(ctx context.Context) ([]models.MarketEvent, error) {
	return loadCollection[models.MarketEvent](ctx, r.store, KeyMarkets)
}

func (r *MarketRepository) GetByID(ctx context.Context, id string) (models.MarketEvent, error) {
	markets, err := r.GetAll(ctx)
	if err != nil {
		return models.MarketEvent{}, err
	}
	for _, market := range markets {
		if market.ID == id {
			return market, nil
		}
	}
	return models.MarketEvent{}, ErrNotFound
}

func (r *MarketRepository) Add(ctx context.Context, market models.MarketEvent) (models.MarketEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	markets, err := r.GetAll(ctx)
	if err != nil {
		return models.MarketEvent{}, err
	}
	market.ID = GenerateID()
	market.CreatedAt = nowISO()

	markets = append([]models.MarketEvent{market}, markets...)
	if err := saveCollection(ctx, r.store, KeyMarkets, markets); err != nil {
		return models.MarketEvent{}, err
	}
	return market, nil
}

func (r *MarketRepository) Update(ctx context.Context, id string, update MarketUpdate) (models.MarketEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	markets, err := r.GetAll(ctx)
	if err != nil {
		return models.MarketEvent{}, err
	}
	index := -1
	for i, market := range markets {
		if market.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.MarketEvent{}, ErrNotFound
	}

	market := markets[index]
	if update.Name != nil {
		market.Name = *update.Name
	}
	if update.Date != nil {
		market.Date = *update.Date
	}
	if update.Location != nil {
		market.Location = *update.Location
	}
	if update.StandFee != nil {
		market.StandFee = *update.StandFee
	}
	if update.TravelCost != nil {
		market.TravelCost = *update.TravelCost
	}
	if update.Notes != nil {
		market.Notes = *update.Notes
	}

	markets[index] = market
	if err := saveCollection(ctx, r.store, KeyMarkets, markets); err != nil {
		return models.MarketEvent{}, err
	}
	return market, nil
}

func (r *MarketRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	markets, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := markets[:0]
	for _, market := range markets {
		if market.ID != id {
			kept = append(kept, market)
		}
	}
	return saveCollection(ctx, r.store, KeyMarkets, kept)
}

func (r *MarketRepository) ReplaceAll(ctx context.Context, markets []models.MarketEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveCollection(ctx, r.store, KeyMarkets, markets)
}
