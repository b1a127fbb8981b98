package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// loadCollection reads a key's blob and parses it as a JSON array. An absent
// key yields an empty slice; malformed JSON surfaces as ErrParse.
func loadCollection[T any](ctx context.Context, store Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection writes the whole array back under the key. Every write
// visits the full collection; there is no partial or streaming update.
func saveCollection[T any](ctx context.Context, store Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}
