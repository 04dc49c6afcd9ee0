package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
)

// Notifications is a thin layer over the notification store that owns ID
// assignment and timestamps.
type Notifications struct {
	store drepo.NotificationStore
}

func NewNotifications(store drepo.NotificationStore) *Notifications {
	return &Notifications{store: store}
}

func (u *Notifications) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return u.store.List(ctx, userID)
}

func (u *Notifications) Add(ctx context.Context, userID, kind, title, message string) (*models.Notification, error) {
	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.store.Add(ctx, userID, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, id string) error {
	return u.store.MarkRead(ctx, userID, id)
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID string) error {
	return u.store.MarkAllRead(ctx, userID)
}

func (u *Notifications) Delete(ctx context.Context, userID, id string) error {
	return u.store.Delete(ctx, userID, id)
}

func (u *Notifications) DeleteAll(ctx context.Context, userID string) error {
	return u.store.DeleteAll(ctx, userID)
}
