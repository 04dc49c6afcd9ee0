package models

import "errors"

// TimeRange is the requested window/granularity for historical series.
type TimeRange string

const (
	Range1D  TimeRange = "1D"
	Range1W  TimeRange = "1W"
	Range1M  TimeRange = "1M"
	Range3M  TimeRange = "3M"
	Range1Y  TimeRange = "1Y"
	RangeAll TimeRange = "ALL"
)

// ErrInvalidTimeRange signals an unrecognized range value. This is a
// programmer error; range values coming off the wire are normalized first.
var ErrInvalidTimeRange = errors.New("invalid time range")

// RangeConfig maps a TimeRange onto provider query parameters and the
// expected output cardinality. Limits are trading-calendar approximations
// (78 five-minute bars is one trading day) and are load-bearing for output
// size, do not adjust them.
type RangeConfig struct {
	Function string
	Interval string
	Limit    int
	DataKey  string
}

// ResolveTimeRange returns the provider configuration for a range.
func ResolveTimeRange(tr TimeRange) (RangeConfig, error) {
	switch tr {
	case Range1D:
		return RangeConfig{
			Function: "TIME_SERIES_INTRADAY",
			Interval: "5min",
			Limit:    78,
			DataKey:  "Time Series (5min)",
		}, nil
	case Range1W:
		return RangeConfig{
			Function: "TIME_SERIES_INTRADAY",
			Interval: "60min",
			Limit:    33,
			DataKey:  "Time Series (60min)",
		}, nil
	case Range1M:
		return RangeConfig{
			Function: "TIME_SERIES_DAILY",
			Limit:    22,
			DataKey:  "Time Series (Daily)",
		}, nil
	case Range3M:
		return RangeConfig{
			Function: "TIME_SERIES_DAILY",
			Limit:    66,
			DataKey:  "Time Series (Daily)",
		}, nil
	case Range1Y:
		return RangeConfig{
			Function: "TIME_SERIES_WEEKLY",
			Limit:    52,
			DataKey:  "Weekly Time Series",
		}, nil
	case RangeAll:
		return RangeConfig{
			Function: "TIME_SERIES_WEEKLY",
			Limit:    1000,
			DataKey:  "Weekly Time Series",
		}, nil
	default:
		return RangeConfig{}, ErrInvalidTimeRange
	}
}

// IsValidTimeRange returns true if tr is a supported range.
func IsValidTimeRange(tr TimeRange) bool {
	_, err := ResolveTimeRange(tr)
	return err == nil
}

// DefaultTimeRange returns the default range.
func DefaultTimeRange() TimeRange { return Range1D }

// NormalizeTimeRange converts a raw string to a valid range (or default).
func NormalizeTimeRange(s string) TimeRange {
	if s == "" {
		return DefaultTimeRange()
	}
	tr := TimeRange(s)
	if IsValidTimeRange(tr) {
		return tr
	}
	return DefaultTimeRange()
}
