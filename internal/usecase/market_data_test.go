package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"StockDash/internal/domain/models"
	"StockDash/internal/service/alphavantage"
	"StockDash/internal/service/cache"
	"StockDash/internal/service/requestqueue"
	"StockDash/pkg/logger"
)

const intradayBody = `{
	"Meta Data": {"2. Symbol": "AAPL"},
	"Time Series (5min)": {
		"2024-01-02 09:30:00": {"4. close": "100.0000"},
		"2024-01-02 09:35:00": {"4. close": "102.0000"}
	}
}`

const quoteBody = `{
	"Global Quote": {
		"01. symbol": "AAPL",
		"03. high": "187.5000",
		"04. low": "183.2500",
		"05. price": "185.9200",
		"06. volume": "54639812",
		"09. change": "1.3400",
		"10. change percent": "0.7261%"
	}
}`

type nopMetrics struct{}

func (nopMetrics) RecordProviderRequest(string, string) {}
func (nopMetrics) RecordCacheLookup(bool)               {}
func (nopMetrics) RecordQueueDepth(int)                 {}
func (nopMetrics) RecordQueueWait(float64)              {}
func (nopMetrics) RecordLastPrice(string, float64)      {}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, _, _, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

// newTestMarketData builds the full pipeline against srv with a short queue
// delay so tests stay fast.
func newTestMarketData(srv *httptest.Server, notifier *recordingNotifier) *MarketData {
	return NewMarketData(
		alphavantage.New(srv.URL, "test-key", time.Second),
		cache.NewPayloadCache(),
		requestqueue.New(5*time.Millisecond, logger.Nop(), nopMetrics{}),
		notifier,
		nopMetrics{},
		logger.Nop(),
		time.Minute,
	)
}

func TestGetStockDataAssemblesChart(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Write([]byte(intradayBody))
	}))
	defer srv.Close()

	md := newTestMarketData(srv, &recordingNotifier{})
	data := md.GetStockData(context.Background(), "AAPL", models.Range1D)

	if len(data.Actual) != 2 {
		t.Fatalf("actual = %v, want the two bars", data.Actual)
	}
	if data.Actual[0] != 100 || data.Actual[1] != 102 {
		t.Fatalf("actual = %v, want ascending [100 102]", data.Actual)
	}
	if len(data.Labels) != len(data.Actual)+predictionHorizon {
		t.Fatalf("got %d labels, want %d actual plus %d projected",
			len(data.Labels), len(data.Actual), predictionHorizon)
	}
	if len(data.Predicted) != len(data.Labels) {
		t.Fatalf("predicted length %d does not cover %d labels", len(data.Predicted), len(data.Labels))
	}
	for i := 0; i < len(data.Actual); i++ {
		if data.Predicted[i] != nil {
			t.Fatalf("predicted[%d] = %v, want nil over the observed window", i, *data.Predicted[i])
		}
	}
	for i := len(data.Actual); i < len(data.Predicted); i++ {
		if data.Predicted[i] == nil {
			t.Fatalf("predicted[%d] is nil in the projected window", i)
		}
	}
	if atomic.LoadInt64(&requests) != 1 {
		t.Fatalf("provider called %d times, want 1", requests)
	}
}

func TestGetStockDataServesCacheWithinTTL(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Write([]byte(intradayBody))
	}))
	defer srv.Close()

	md := newTestMarketData(srv, &recordingNotifier{})
	ctx := context.Background()

	first := md.GetStockData(ctx, "AAPL", models.Range1D)
	second := md.GetStockData(ctx, "AAPL", models.Range1D)

	if atomic.LoadInt64(&requests) != 1 {
		t.Fatalf("provider called %d times, want 1 within the TTL window", requests)
	}
	if len(first.Actual) != len(second.Actual) {
		t.Fatalf("cached response diverged: %v vs %v", first.Actual, second.Actual)
	}
}

func TestGetStockDataQuotaDegradesWithNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage!"}`))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	md := newTestMarketData(srv, notifier)
	data := md.GetStockData(context.Background(), "AAPL", models.Range1D)

	if len(data.Labels) != 0 || len(data.Actual) != 0 || len(data.Predicted) != 0 {
		t.Fatalf("expected the empty sentinel, got %+v", data)
	}
	if data.Labels == nil || data.Actual == nil || data.Predicted == nil {
		t.Fatal("sentinel slices must be non-nil")
	}
	if got := notifier.last(); got != msgQuotaExceeded {
		t.Fatalf("notification = %q, want %q", got, msgQuotaExceeded)
	}
}

func TestGetStockDataEmptySymbolSkipsNetwork(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer srv.Close()

	md := newTestMarketData(srv, &recordingNotifier{})
	data := md.GetStockData(context.Background(), "", models.Range1D)

	if len(data.Labels) != 0 || len(data.Actual) != 0 {
		t.Fatalf("expected the empty sentinel, got %+v", data)
	}
	if atomic.LoadInt64(&requests) != 0 {
		t.Fatalf("provider called %d times for an empty symbol", requests)
	}
}

func TestGetStockDataUnknownRangeSkipsNetwork(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer srv.Close()

	md := newTestMarketData(srv, &recordingNotifier{})
	data := md.GetStockData(context.Background(), "AAPL", models.TimeRange("2D"))

	if len(data.Actual) != 0 {
		t.Fatalf("expected the empty sentinel, got %+v", data)
	}
	if atomic.LoadInt64(&requests) != 0 {
		t.Fatalf("provider called %d times for an unknown range", requests)
	}
}

func TestGetStockQuoteNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteBody))
	}))
	defer srv.Close()

	md := newTestMarketData(srv, &recordingNotifier{})
	q := md.GetStockQuote(context.Background(), "AAPL")

	if q.Symbol != "AAPL" {
		t.Fatalf("symbol = %q, want AAPL", q.Symbol)
	}
	if q.Price != 185.92 {
		t.Fatalf("price = %v, want 185.92", q.Price)
	}
	if q.Change != 1.34 {
		t.Fatalf("change = %v, want 1.34", q.Change)
	}
	if q.ChangePercent != "0.7261%" {
		t.Fatalf("change percent = %q, want 0.7261%%", q.ChangePercent)
	}
	if q.Volume != 54639812 {
		t.Fatalf("volume = %v, want 54639812", q.Volume)
	}
	if q.High != 187.5 || q.Low != 183.25 {
		t.Fatalf("high/low = %v/%v, want 187.5/183.25", q.High, q.Low)
	}
}

func TestGetStockQuoteDegradesToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	md := newTestMarketData(srv, notifier)
	q := md.GetStockQuote(context.Background(), "AAPL")

	if q.Symbol != "AAPL" || q.Price != 0 || q.ChangePercent != "0%" {
		t.Fatalf("expected the zero quote, got %+v", q)
	}
	if got := notifier.last(); got != msgQuoteFailed {
		t.Fatalf("notification = %q, want %q", got, msgQuoteFailed)
	}
}

func TestNormalizeQuoteMissingBlock(t *testing.T) {
	q := normalizeQuote("MSFT", models.ProviderPayload{})
	if q.Symbol != "MSFT" || q.Price != 0 || q.ChangePercent != "0%" {
		t.Fatalf("expected the zero quote, got %+v", q)
	}
}
