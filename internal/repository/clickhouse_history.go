package repository

import (
	"context"
	"database/sql"
	"fmt"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	pkgch "StockDash/pkg/clickhouse"
	"StockDash/pkg/logger"
)

// CHTradeStore implements TradeStore backed by ClickHouse. Trade history is
// append-only, which suits a MergeTree table.
type CHTradeStore struct {
	ch *pkgch.Client
	db *sql.DB
	l  *logger.Logger
}

var _ drepo.TradeStore = (*CHTradeStore)(nil)

func NewCHTradeStore(ch *pkgch.Client, l *logger.Logger) *CHTradeStore {
	return &CHTradeStore{ch: ch, db: ch.DB(), l: l}
}

func (s *CHTradeStore) Init(ctx context.Context) error {
	return s.ch.InitSchema(ctx, []string{`
        CREATE TABLE IF NOT EXISTS trading_history (
            user_id     String,
            id          String,
            symbol      String,
            type        String,
            price       Float64,
            quantity    Float64,
            profit_loss Nullable(Float64),
            executed_at DateTime
        ) ENGINE = MergeTree
        ORDER BY (user_id, executed_at)
    `})
}

func (s *CHTradeStore) Add(ctx context.Context, userID string, t *models.Trade) error {
	const q = `
        INSERT INTO trading_history
            (user_id, id, symbol, type, price, quantity, profit_loss, executed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	if _, err := s.db.ExecContext(ctx, q,
		userID, t.ID, t.Symbol, t.Type, t.Price, t.Quantity, t.ProfitLoss, t.ExecutedAt,
	); err != nil {
		s.l.Error("clickhouse trade insert error",
			logger.String("user_id", userID),
			logger.String("symbol", t.Symbol),
			logger.Error(err),
		)
		return fmt.Errorf("add trade: %w", err)
	}
	return nil
}

func (s *CHTradeStore) List(ctx context.Context, userID string, limit int) ([]*models.Trade, error) {
	const q = `
        SELECT id, symbol, type, price, quantity, profit_loss, executed_at
        FROM trading_history
        WHERE user_id = ?
        ORDER BY executed_at DESC
        LIMIT ?
    `
	rows, err := s.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		s.l.Error("clickhouse trade query error",
			logger.String("user_id", userID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Trade, 0, limit)
	for rows.Next() {
		var t models.Trade
		if err := rows.Scan(&t.ID, &t.Symbol, &t.Type, &t.Price, &t.Quantity, &t.ProfitLoss, &t.ExecutedAt); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return out, nil
}

func (s *CHTradeStore) Health(ctx context.Context) error {
	return s.ch.Health(ctx)
}

func (s *CHTradeStore) Close() error {
	return s.ch.Close()
}
