package usecase

import (
	"encoding/json"
	"reflect"
	"testing"

	"StockDash/internal/domain/models"
)

func mustConfig(t *testing.T, tr models.TimeRange) models.RangeConfig {
	t.Helper()
	cfg, err := models.ResolveTimeRange(tr)
	if err != nil {
		t.Fatalf("ResolveTimeRange(%s): %v", tr, err)
	}
	return cfg
}

func TestExtractSeriesMissingKey(t *testing.T) {
	cfg := mustConfig(t, models.Range1D)
	payload := models.ProviderPayload{
		"Meta Data": json.RawMessage(`{"2. Symbol":"AAPL"}`),
	}
	if got := extractSeries(payload, cfg); got != nil {
		t.Fatalf("expected nil series for missing key, got %v", got)
	}
}

func TestExtractSeriesNotAnObject(t *testing.T) {
	cfg := mustConfig(t, models.Range1D)
	payload := models.ProviderPayload{
		cfg.DataKey: json.RawMessage(`"not a series"`),
	}
	if got := extractSeries(payload, cfg); got != nil {
		t.Fatalf("expected nil series for malformed value, got %v", got)
	}
}

func TestProcessSeriesChronologicalOrder(t *testing.T) {
	series := map[string]map[string]string{
		"2024-01-02 09:35:00": {"4. close": "102.0000"},
		"2024-01-02 09:30:00": {"4. close": "100.0000"},
	}

	labels, prices := processSeries(series, models.Range1D, 78)

	if !reflect.DeepEqual(prices, []float64{100, 102}) {
		t.Fatalf("prices = %v, want [100 102]", prices)
	}
	if !reflect.DeepEqual(labels, []string{"9:30 AM", "9:35 AM"}) {
		t.Fatalf("labels = %v, want [9:30 AM 9:35 AM]", labels)
	}
}

func TestProcessSeriesKeepsMostRecent(t *testing.T) {
	series := map[string]map[string]string{
		"2024-01-02": {"4. close": "1"},
		"2024-01-03": {"4. close": "2"},
		"2024-01-04": {"4. close": "3"},
		"2024-01-05": {"4. close": "4"},
	}

	_, prices := processSeries(series, models.Range1M, 2)

	if !reflect.DeepEqual(prices, []float64{3, 4}) {
		t.Fatalf("prices = %v, want the two most recent bars [3 4]", prices)
	}
}

func TestProcessSeriesMalformedCloseDegradesToZero(t *testing.T) {
	series := map[string]map[string]string{
		"2024-01-02 09:30:00": {"4. close": "abc"},
		"2024-01-02 09:35:00": {},
		"2024-01-02 09:40:00": {"4. close": "101.5"},
	}

	labels, prices := processSeries(series, models.Range1D, 78)

	if len(labels) != len(prices) {
		t.Fatalf("labels and prices diverge: %d vs %d", len(labels), len(prices))
	}
	if !reflect.DeepEqual(prices, []float64{0, 0, 101.5}) {
		t.Fatalf("prices = %v, want [0 0 101.5]", prices)
	}
}

func TestFormatTimeLabelByRange(t *testing.T) {
	tests := []struct {
		ts   string
		tr   models.TimeRange
		want string
	}{
		{"2024-01-02 14:30:00", models.Range1D, "2:30 PM"},
		{"2024-01-02 14:30:00", models.Range1W, "Tue 2:30 PM"},
		{"2024-01-02", models.Range1M, "Jan 2"},
		{"2024-01-02", models.Range3M, "Jan 2"},
		{"2024-01-02", models.Range1Y, "Jan 2024"},
		{"2024-01-02", models.RangeAll, "Jan 2024"},
		{"garbage", models.Range1D, "garbage"},
	}
	for _, tc := range tests {
		if got := formatTimeLabel(tc.ts, tc.tr); got != tc.want {
			t.Errorf("formatTimeLabel(%q, %s) = %q, want %q", tc.ts, tc.tr, got, tc.want)
		}
	}
}
