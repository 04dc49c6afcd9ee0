package usecase

import (
	"context"

	drepo "StockDash/internal/domain/repository"
	"StockDash/pkg/http/middleware"
	"StockDash/pkg/logger"
)

// StoreNotifier delivers degraded-fetch notices to the requesting user's
// notification feed. When the context carries no user, or the store write
// fails, the notice is logged and dropped; notification delivery must never
// fail the request that triggered it.
type StoreNotifier struct {
	notifications *Notifications
	log           *logger.Logger
}

var _ drepo.Notifier = (*StoreNotifier)(nil)

func NewStoreNotifier(notifications *Notifications, log *logger.Logger) *StoreNotifier {
	return &StoreNotifier{notifications: notifications, log: log}
}

func (n *StoreNotifier) Notify(ctx context.Context, kind, title, message string) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		n.log.Warn("dropping notification without a user",
			logger.String("kind", kind),
			logger.String("message", message),
		)
		return
	}
	if _, err := n.notifications.Add(ctx, userID, kind, title, message); err != nil {
		n.log.Warn("failed to store notification",
			logger.String("user_id", userID),
			logger.Error(err),
		)
	}
}
