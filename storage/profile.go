package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"vendora-backend/models"
)

// ProfileRepository stores the singleton company profile. Saves overwrite the
// record wholesale.
type ProfileRepository struct {
	store Store
}

func NewProfileRepository(store Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Get returns an empty profile when nothing has been saved yet.
func (r *ProfileRepository) Get(ctx context.Context) (models.CompanyProfile, error) {
	raw, ok, err := r.store.Get(ctx, KeyCompanyProfile)
	if err != nil {
		return models.CompanyProfile{}, err
	}
	if !ok {
		return models.CompanyProfile{}, nil
	}
	var profile models.CompanyProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.CompanyProfile{}, fmt.Errorf("%w: %s: %v", ErrParse, KeyCompanyProfile, err)
	}
	return profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile models.CompanyProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyCompanyProfile, err)
	}
	return r.store.Set(ctx, KeyCompanyProfile, string(raw))
}
