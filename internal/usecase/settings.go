package usecase

import (
	"context"
	"time"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
)

// defaultTheme applies when a user has never saved settings.
const defaultTheme = "dark"

// Settings reads and writes per-user preferences.
type Settings struct {
	store drepo.SettingsStore
}

func NewSettings(store drepo.SettingsStore) *Settings {
	return &Settings{store: store}
}

// Get returns the user's settings, or defaults when none are stored.
func (u *Settings) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	s, err := u.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &models.UserSettings{Theme: defaultTheme}, nil
	}
	return s, nil
}

func (u *Settings) Update(ctx context.Context, userID string, s *models.UserSettings) (*models.UserSettings, error) {
	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Update(ctx, userID, s); err != nil {
		return nil, err
	}
	return s, nil
}
