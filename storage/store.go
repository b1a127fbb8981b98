package storage

import (
	"context"
	"errors"
	"fmt"

	"vendora-backend/models"

	"gorm.io/gorm"
)

// Persisted state layout: one key per collection, one key per singleton, one
// key for the invoice counter. These are the keys earlier on-device releases
// wrote, so imported device backups keep working unchanged.
const (
	KeyOrders         = "vendora_orders"
	KeyMarkets        = "vendora_markets"
	KeyMarketSales    = "vendora_market_sales"
	KeyExpenses       = "vendora_expenses"
	KeyCompanyProfile = "vendora_company_profile"
	KeySettings       = "vendora_settings"
	KeyInvoiceCounter = "vendora_invoice_counter"
	KeyLanguage       = "vendora_language"
)

// AllDataKeys lists every key removed by a full reset. The language key is
// deliberately not included; a reset keeps the display language.
var AllDataKeys = []string{
	KeyOrders,
	KeyMarkets,
	KeyMarketSales,
	KeyExpenses,
	KeyCompanyProfile,
	KeySettings,
	KeyInvoiceCounter,
}

// Store is the persistent, string-keyed, string-valued store everything else
// sits on. No transactionality is provided across keys.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
}

// GormStore persists blobs in a single kv_entries table. SQLite by default,
// Postgres when configured; either way the contract is the same.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", ErrStoreUnavailable, key, err)
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Save(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&models.KVEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

func (s *GormStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Delete(&models.KVEntry{}, "key IN ?", keys).Error
	if err != nil {
		return fmt.Errorf("%w: remove %d keys: %v", ErrStoreUnavailable, len(keys), err)
	}
	return nil
}
