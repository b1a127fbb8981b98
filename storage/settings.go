package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"vendora-backend/models"
)

// SettingsRepository stores the singleton app settings plus the display
// language, which lives under its own key so a data reset keeps it.
type SettingsRepository struct {
	store Store
}

func NewSettingsRepository(store Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the defaults (system theme, euro) when nothing has been saved.
func (r *SettingsRepository) Get(ctx context.Context) (models.AppSettings, error) {
	raw, ok, err := r.store.Get(ctx, KeySettings)
	if err != nil {
		return models.AppSettings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	var settings models.AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.AppSettings{}, fmt.Errorf("%w: %s: %v", ErrParse, KeySettings, err)
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeySettings, err)
	}
	return r.store.Set(ctx, KeySettings, string(raw))
}

// Language returns the persisted display language, defaulting to German.
func (r *SettingsRepository) Language(ctx context.Context) (string, error) {
	raw, ok, err := r.store.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	if !ok || (raw != "de" && raw != "en") {
		return "de", nil
	}
	return raw, nil
}

func (r *SettingsRepository) SaveLanguage(ctx context.Context, language string) error {
	return r.store.Set(ctx, KeyLanguage, language)
}
