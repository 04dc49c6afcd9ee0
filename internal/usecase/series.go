package usecase

import (
	"encoding/json"
	"sort"
	"time"

	"StockDash/internal/domain/models"
	"StockDash/pkg/util"
)

// closeField is the closing-price field inside one provider bar.
const closeField = "4. close"

// Provider timestamp layouts. Intraday bars carry a time component, daily
// and weekly bars are dates only.
const (
	intradayLayout = "2006-01-02 15:04:05"
	dailyLayout    = "2006-01-02"
)

// extractSeries pulls the range's time-series object out of a raw payload.
// Returns nil when the key is absent or the value is not a series.
func extractSeries(p models.ProviderPayload, cfg models.RangeConfig) map[string]map[string]string {
	raw, ok := p[cfg.DataKey]
	if !ok {
		return nil
	}
	var series map[string]map[string]string
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil
	}
	return series
}

// processSeries orders the raw bars chronologically, keeps the most recent
// limit points and extracts closing prices with range-appropriate labels.
// A bar with a missing or malformed close degrades to 0 rather than failing
// the series. labels and prices are always the same length.
func processSeries(series map[string]map[string]string, tr models.TimeRange, limit int) (labels []string, prices []float64) {
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	// ISO-like timestamps sort chronologically as strings
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}

	labels = make([]string, len(keys))
	prices = make([]float64, len(keys))
	for i, k := range keys {
		labels[i] = formatTimeLabel(k, tr)
		prices[i] = util.ParseFloatDefault(series[k][closeField], 0)
	}
	return labels, prices
}

// formatTimeLabel renders a provider timestamp for the chart axis. The
// format is keyed by range, not by timestamp shape; an unparsable timestamp
// falls back to its raw form.
func formatTimeLabel(ts string, tr models.TimeRange) string {
	t, err := time.Parse(intradayLayout, ts)
	if err != nil {
		t, err = time.Parse(dailyLayout, ts)
		if err != nil {
			return ts
		}
	}

	switch tr {
	case models.Range1D:
		return t.Format("3:04 PM")
	case models.Range1W:
		return t.Format("Mon 3:04 PM")
	case models.Range1M, models.Range3M:
		return t.Format("Jan 2")
	case models.Range1Y, models.RangeAll:
		return t.Format("Jan 2006")
	default:
		return ts
	}
}
