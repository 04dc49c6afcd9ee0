package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"StockDash/internal/domain/models"
)

func TestSeriesURL(t *testing.T) {
	c := New("https://example.com/query", "demo", time.Second)
	cfg, err := models.ResolveTimeRange(models.Range1D)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	u, err := url.Parse(c.SeriesURL("AAPL", cfg))
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := u.Query()
	if q.Get("function") != "TIME_SERIES_INTRADAY" || q.Get("interval") != "5min" {
		t.Fatalf("wrong query: %v", q)
	}
	if q.Get("symbol") != "AAPL" || q.Get("apikey") != "demo" {
		t.Fatalf("wrong query: %v", q)
	}
}

func TestSeriesURLOmitsIntervalForDaily(t *testing.T) {
	c := New("https://example.com/query", "demo", time.Second)
	cfg, _ := models.ResolveTimeRange(models.Range1M)

	u, _ := url.Parse(c.SeriesURL("IBM", cfg))
	if u.Query().Has("interval") {
		t.Fatalf("daily request must not carry an interval: %v", u)
	}
}

func TestGetValidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Global Quote": {"05. price": "191.45"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "demo", time.Second)
	p, err := c.Get(context.Background(), c.QuoteURL("AAPL"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p["Global Quote"]; !ok {
		t.Fatalf("payload missing quote key: %v", p)
	}
}

func TestValidateOrder(t *testing.T) {
	// error message wins over note
	p := models.ProviderPayload{
		"Error Message": json.RawMessage(`"Invalid API call"`),
		"Note":          json.RawMessage(`"limit"`),
	}
	if err := Validate(p); !errors.Is(err, ErrProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}

	p = models.ProviderPayload{"Note": json.RawMessage(`"limit"`)}
	if err := Validate(p); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}

	if err := Validate(models.ProviderPayload{}); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected empty payload error, got %v", err)
	}

	ok := models.ProviderPayload{"Weekly Time Series": json.RawMessage(`{}`)}
	if err := Validate(ok); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestGetHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "demo", time.Second)
	if _, err := c.Get(context.Background(), c.QuoteURL("AAPL")); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}
