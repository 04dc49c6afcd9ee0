package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	xlogger "StockDash/pkg/logger"
)

type stubMarket struct {
	lastSymbol string
	lastRange  models.TimeRange
}

func (s *stubMarket) GetStockData(_ context.Context, symbol string, tr models.TimeRange) *models.StockData {
	s.lastSymbol = symbol
	s.lastRange = tr
	return models.EmptyStockData()
}

func (s *stubMarket) GetStockQuote(_ context.Context, symbol string) *models.Quote {
	s.lastSymbol = symbol
	return models.EmptyQuote(symbol)
}

func newStocksTestServer(market *stubMarket) *echo.Echo {
	e := echo.New()
	NewStocksHandler(xlogger.Nop(), market).RegisterRoutes(e)
	return e
}

func decodeStatus(t *testing.T, body []byte) int {
	t.Helper()
	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Status
}

func TestStockDataRouteNormalizesRange(t *testing.T) {
	market := &stubMarket{}
	e := newStocksTestServer(market)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/AAPL/data?range=1W", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := decodeStatus(t, rec.Body.Bytes()); got != http.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
	if market.lastSymbol != "AAPL" || market.lastRange != models.Range1W {
		t.Fatalf("market called with %q/%s, want AAPL/1W", market.lastSymbol, market.lastRange)
	}
}

func TestStockDataRouteDefaultsUnknownRange(t *testing.T) {
	market := &stubMarket{}
	e := newStocksTestServer(market)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/AAPL/data?range=bogus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if market.lastRange != models.Range1D {
		t.Fatalf("range = %s, want the 1D default", market.lastRange)
	}
}

func TestStockQuoteRoute(t *testing.T) {
	market := &stubMarket{}
	e := newStocksTestServer(market)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/MSFT/quote", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := decodeStatus(t, rec.Body.Bytes()); got != http.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
	if market.lastSymbol != "MSFT" {
		t.Fatalf("market called with %q, want MSFT", market.lastSymbol)
	}
}

func TestWatchlistsRouteRequiresUser(t *testing.T) {
	e := echo.New()
	NewWatchlistsHandler(xlogger.Nop(), nil).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlists", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := decodeStatus(t, rec.Body.Bytes()); got != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without a user header", got)
	}
}
