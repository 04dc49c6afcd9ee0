package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
)

const defaultHistoryLimit = 100

// TradingHistory records executed trades and serves them back newest first.
type TradingHistory struct {
	store drepo.TradeStore
}

func NewTradingHistory(store drepo.TradeStore) *TradingHistory {
	return &TradingHistory{store: store}
}

func (u *TradingHistory) Record(ctx context.Context, userID string, t *models.Trade) (*models.Trade, error) {
	t.ID = uuid.NewString()
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	if t.ExecutedAt.IsZero() {
		t.ExecutedAt = time.Now().UTC()
	}
	if err := u.store.Add(ctx, userID, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *TradingHistory) List(ctx context.Context, userID string, limit int) ([]*models.Trade, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.store.List(ctx, userID, limit)
}
