package models

import (
	"errors"
	"testing"
)

func TestResolveTimeRangeTable(t *testing.T) {
	tests := []struct {
		tr       TimeRange
		function string
		interval string
		limit    int
		dataKey  string
	}{
		{Range1D, "TIME_SERIES_INTRADAY", "5min", 78, "Time Series (5min)"},
		{Range1W, "TIME_SERIES_INTRADAY", "60min", 33, "Time Series (60min)"},
		{Range1M, "TIME_SERIES_DAILY", "", 22, "Time Series (Daily)"},
		{Range3M, "TIME_SERIES_DAILY", "", 66, "Time Series (Daily)"},
		{Range1Y, "TIME_SERIES_WEEKLY", "", 52, "Weekly Time Series"},
		{RangeAll, "TIME_SERIES_WEEKLY", "", 1000, "Weekly Time Series"},
	}
	for _, tc := range tests {
		cfg, err := ResolveTimeRange(tc.tr)
		if err != nil {
			t.Fatalf("ResolveTimeRange(%s): %v", tc.tr, err)
		}
		if cfg.Function != tc.function || cfg.Interval != tc.interval ||
			cfg.Limit != tc.limit || cfg.DataKey != tc.dataKey {
			t.Errorf("ResolveTimeRange(%s) = %+v", tc.tr, cfg)
		}
	}
}

func TestResolveTimeRangeUnknown(t *testing.T) {
	if _, err := ResolveTimeRange(TimeRange("2D")); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
}

func TestNormalizeTimeRange(t *testing.T) {
	if got := NormalizeTimeRange(""); got != Range1D {
		t.Fatalf("empty range normalized to %s, want 1D", got)
	}
	if got := NormalizeTimeRange("1Y"); got != Range1Y {
		t.Fatalf("1Y normalized to %s", got)
	}
	if got := NormalizeTimeRange("bogus"); got != Range1D {
		t.Fatalf("unknown range normalized to %s, want 1D", got)
	}
}
