package models

import "encoding/json"

// StockDataRequest selects a symbol and chart range.
type StockDataRequest struct {
	Symbol string `param:"symbol" validate:"required,min=1,max=12"`
	Range  string `query:"range" default:"1D"`
}

// StockQuoteRequest selects a symbol for a current quote.
type StockQuoteRequest struct {
	Symbol string `param:"symbol" validate:"required,min=1,max=12"`
}

type CreateWatchlistRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

type RenameWatchlistRequest struct {
	ID   string `param:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=64"`
}

type AddWatchlistItemRequest struct {
	ID     string `param:"id" validate:"required"`
	Symbol string `json:"symbol" validate:"required,min=1,max=12"`
}

type UpdateSettingsRequest struct {
	Theme              string          `json:"theme" default:"dark" validate:"oneof=light dark"`
	Notifications      json.RawMessage `json:"notifications,omitempty"`
	TradingPreferences json.RawMessage `json:"trading_preferences,omitempty"`
	SecuritySettings   json.RawMessage `json:"security_settings,omitempty"`
}

type RecordTradeRequest struct {
	Symbol     string   `json:"symbol" validate:"required,min=1,max=12"`
	Type       string   `json:"type" validate:"required,oneof=buy sell"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Quantity   float64  `json:"quantity" validate:"required,gt=0"`
	ProfitLoss *float64 `json:"profit_loss,omitempty"`
}

type ListTradesRequest struct {
	Limit int `query:"limit" default:"100" validate:"gte=0,lte=1000"`
}
