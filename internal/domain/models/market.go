package models

import "encoding/json"

// ProviderPayload is a decoded provider response, keyed by its top-level
// fields ("Global Quote", "Time Series (5min)", "Error Message", ...).
type ProviderPayload map[string]json.RawMessage

// Quote is the normalized current-quote record. A quote is never partially
// populated: it is either fully resolved or the zero quote, and a zero price
// doubles as the no-data signal for callers.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent string  `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
}

// EmptyQuote returns the zero-quote sentinel for a symbol.
func EmptyQuote(symbol string) *Quote {
	return &Quote{Symbol: symbol, ChangePercent: "0%"}
}

// StockData is the processed price history for one symbol and range.
// Predicted is populated only for the intraday range: nulls for every
// historical index followed by the projected points.
type StockData struct {
	Labels    []string   `json:"labels"`
	Actual    []float64  `json:"actual"`
	Predicted []*float64 `json:"predicted"`
}

// EmptyStockData returns the empty-result sentinel.
func EmptyStockData() *StockData {
	return &StockData{
		Labels:    []string{},
		Actual:    []float64{},
		Predicted: []*float64{},
	}
}
