package repository

import (
	"context"

	"StockDash/internal/domain/models"
)

// MarketData exposes the two public market-data entry points. Both are total
// from the caller's perspective: they never return an error and settle to the
// empty/zero sentinel on any failure.
type MarketData interface {
	GetStockData(ctx context.Context, symbol string, tr models.TimeRange) *models.StockData
	GetStockQuote(ctx context.Context, symbol string) *models.Quote
}

type WatchlistStore interface {
	List(ctx context.Context, userID string) ([]models.Watchlist, error)
	Get(ctx context.Context, userID, id string) (*models.Watchlist, error)
	Create(ctx context.Context, userID string, w *models.Watchlist) error
	Rename(ctx context.Context, userID, id, name string) error
	Delete(ctx context.Context, userID, id string) error
	AddItem(ctx context.Context, userID, watchlistID string, item models.WatchlistItem) error
	RemoveItem(ctx context.Context, userID, watchlistID, itemID string) error
}

type NotificationStore interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	Add(ctx context.Context, userID string, n models.Notification) error
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) error
}

type SettingsStore interface {
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Update(ctx context.Context, userID string, s *models.UserSettings) error
}

type TradeStore interface {
	Init(ctx context.Context) error // ensure tables
	Add(ctx context.Context, userID string, t *models.Trade) error
	List(ctx context.Context, userID string, limit int) ([]*models.Trade, error)
	Health(ctx context.Context) error // ping
	Close() error
}

// Notifier surfaces a degraded fetch to the user. Implementations must be
// safe to call with a context that carries no user.
type Notifier interface {
	Notify(ctx context.Context, kind, title, message string)
}

type Metrics interface {
	RecordProviderRequest(function, outcome string)
	RecordCacheLookup(hit bool)
	RecordQueueDepth(depth int)
	RecordQueueWait(seconds float64)
	RecordLastPrice(symbol string, price float64)
}
