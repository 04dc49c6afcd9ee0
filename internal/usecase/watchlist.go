package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	"StockDash/pkg/logger"
)

// Watchlists manages named symbol groups and decorates them with live
// quotes on read. Persistence errors propagate; quote lookups never fail,
// they degrade to zero values inside the merged item.
type Watchlists struct {
	store  drepo.WatchlistStore
	market drepo.MarketData
	log    *logger.Logger
}

func NewWatchlists(store drepo.WatchlistStore, market drepo.MarketData, log *logger.Logger) *Watchlists {
	return &Watchlists{store: store, market: market, log: log}
}

// List returns the user's watchlists with current quote data merged into
// every item.
func (u *Watchlists) List(ctx context.Context, userID string) ([]models.Watchlist, error) {
	lists, err := u.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		u.mergeQuotes(ctx, lists[i].Items)
	}
	return lists, nil
}

// Create stores a new, empty watchlist and returns it with its assigned ID.
func (u *Watchlists) Create(ctx context.Context, userID, name string) (*models.Watchlist, error) {
	w := &models.Watchlist{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Items:     []models.WatchlistItem{},
	}
	if err := u.store.Create(ctx, userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Watchlists) Rename(ctx context.Context, userID, id, name string) error {
	return u.store.Rename(ctx, userID, id, name)
}

func (u *Watchlists) Delete(ctx context.Context, userID, id string) error {
	return u.store.Delete(ctx, userID, id)
}

// AddItem appends a symbol to a watchlist, capturing the current price as
// the item's initial price. A degraded quote records an initial price of 0;
// the item is still added.
func (u *Watchlists) AddItem(ctx context.Context, userID, watchlistID, symbol string) (*models.WatchlistItem, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	// Existence check first: the quote below costs a rate-limited provider
	// call, which a bad watchlist ID must not burn.
	if _, err := u.store.Get(ctx, userID, watchlistID); err != nil {
		return nil, err
	}

	q := u.market.GetStockQuote(ctx, symbol)
	if q.Price == 0 {
		u.log.Warn("adding watchlist item without an initial price",
			logger.String("symbol", symbol),
		)
	}

	item := models.WatchlistItem{
		ID:           uuid.NewString(),
		Symbol:       symbol,
		InitialPrice: q.Price,
		AddedAt:      time.Now().UTC(),
	}
	if err := u.store.AddItem(ctx, userID, watchlistID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (u *Watchlists) RemoveItem(ctx context.Context, userID, watchlistID, itemID string) error {
	return u.store.RemoveItem(ctx, userID, watchlistID, itemID)
}

func (u *Watchlists) mergeQuotes(ctx context.Context, items []models.WatchlistItem) {
	for i := range items {
		q := u.market.GetStockQuote(ctx, items[i].Symbol)
		items[i].CurrentPrice = q.Price
		items[i].Change = q.Change
		items[i].ChangePercent = q.ChangePercent
	}
}
