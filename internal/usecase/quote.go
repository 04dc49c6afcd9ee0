package usecase

import (
	"encoding/json"

	"StockDash/internal/domain/models"
	"StockDash/pkg/util"
)

// Provider quote fields use numbered keys.
const (
	quoteKey        = "Global Quote"
	fieldHigh       = "03. high"
	fieldLow        = "04. low"
	fieldPrice      = "05. price"
	fieldVolume     = "06. volume"
	fieldChange     = "09. change"
	fieldChangePerc = "10. change percent"
)

// normalizeQuote maps a raw payload onto the fixed Quote shape. Every field
// degrades to its zero value independently, so the caller always receives a
// structurally complete record; a zero price is the no-data signal.
func normalizeQuote(symbol string, p models.ProviderPayload) *models.Quote {
	raw, ok := p[quoteKey]
	if !ok {
		return models.EmptyQuote(symbol)
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return models.EmptyQuote(symbol)
	}

	q := &models.Quote{
		Symbol:        symbol,
		Price:         util.ParseFloatDefault(fields[fieldPrice], 0),
		Change:        util.ParseFloatDefault(fields[fieldChange], 0),
		ChangePercent: fields[fieldChangePerc],
		Volume:        util.ParseInt64Default(fields[fieldVolume], 0),
		High:          util.ParseFloatDefault(fields[fieldHigh], 0),
		Low:           util.ParseFloatDefault(fields[fieldLow], 0),
	}
	if q.ChangePercent == "" {
		q.ChangePercent = "0%"
	}
	return q
}
