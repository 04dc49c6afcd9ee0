package models

import (
	"encoding/json"
	"time"
)

// WatchlistItem is one tracked symbol. InitialPrice is captured once when
// the item is added; the quote fields are merged in at read time and never
// persisted.
type WatchlistItem struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	InitialPrice float64   `json:"initial_price"`
	AddedAt      time.Time `json:"added_at"`

	CurrentPrice  float64 `json:"current_price,omitempty"`
	Change        float64 `json:"change,omitempty"`
	ChangePercent string  `json:"change_percent,omitempty"`
}

// Watchlist is a named group of tracked symbols owned by one user.
type Watchlist struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []WatchlistItem `json:"items"`
}

// Notification is one user-facing message row.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSettings holds per-user preferences. The preference blobs are opaque
// to this service and stored as-is.
type UserSettings struct {
	Theme              string          `json:"theme"`
	Notifications      json.RawMessage `json:"notifications,omitempty"`
	TradingPreferences json.RawMessage `json:"trading_preferences,omitempty"`
	SecuritySettings   json.RawMessage `json:"security_settings,omitempty"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Trade is one executed-trade row in the trading history.
type Trade struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Type       string    `json:"type"`
	Price      float64   `json:"price"`
	Quantity   float64   `json:"quantity"`
	ProfitLoss *float64  `json:"profit_loss,omitempty"`
	ExecutedAt time.Time `json:"executed_at"`
}
