package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	"StockDash/internal/service/alphavantage"
	"StockDash/internal/service/cache"
	"StockDash/internal/service/requestqueue"
	"StockDash/pkg/logger"
)

// User-facing degradation messages. Quota exhaustion gets its own wording so
// the reader knows retrying in a minute will help.
const (
	msgQuotaExceeded = "API rate limit exceeded. Please try again later."
	msgDataFailed    = "Failed to fetch stock data. Please try again later."
	msgQuoteFailed   = "Failed to fetch stock quote. Please try again later."
)

// MarketData answers stock data and quote requests. It is total: every call
// returns a structurally valid result, degrading to empty sentinels when the
// provider is unreachable, throttled, or returns garbage. Failures surface as
// notifications and log lines, never as errors to the caller.
type MarketData struct {
	provider *alphavantage.Client
	cache    *cache.PayloadCache
	queue    *requestqueue.Queue
	notifier drepo.Notifier
	metrics  drepo.Metrics
	log      *logger.Logger
	ttl      time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ drepo.MarketData = (*MarketData)(nil)

// NewMarketData wires the acquisition pipeline. A non-positive ttl disables
// reuse, forcing every request through the queue.
func NewMarketData(
	provider *alphavantage.Client,
	payloadCache *cache.PayloadCache,
	queue *requestqueue.Queue,
	notifier drepo.Notifier,
	metrics drepo.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *MarketData {
	return &MarketData{
		provider: provider,
		cache:    payloadCache,
		queue:    queue,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		ttl:      ttl,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// fetch returns the payload for rawURL, serving from cache when the stored
// copy is younger than the TTL and otherwise going through the rate-limited
// queue. Successful responses are cached before the waiter is released, so a
// burst of identical requests costs at most one provider call per TTL window.
func (m *MarketData) fetch(ctx context.Context, rawURL, cacheKey, function string) (models.ProviderPayload, error) {
	if payload, storedAt, ok := m.cache.Get(cacheKey); ok && time.Since(storedAt) < m.ttl {
		m.metrics.RecordCacheLookup(true)
		return payload, nil
	}
	m.metrics.RecordCacheLookup(false)

	done := m.queue.Enqueue(ctx, func(taskCtx context.Context) (models.ProviderPayload, error) {
		payload, err := m.provider.Get(taskCtx, rawURL)
		m.metrics.RecordProviderRequest(function, outcomeFor(err))
		if err != nil {
			return nil, err
		}
		m.cache.Set(cacheKey, payload)
		return payload, nil
	})

	select {
	case res := <-done:
		return res.Payload, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetStockData returns chart data for symbol over tr. An empty symbol or an
// unknown range short-circuits to the empty sentinel without touching the
// network.
func (m *MarketData) GetStockData(ctx context.Context, symbol string, tr models.TimeRange) *models.StockData {
	if symbol == "" {
		m.log.Warn("stock data requested without a symbol")
		return models.EmptyStockData()
	}

	cfg, err := models.ResolveTimeRange(tr)
	if err != nil {
		m.log.Warn("stock data requested with unknown range",
			logger.String("symbol", symbol),
			logger.String("range", string(tr)),
		)
		return models.EmptyStockData()
	}

	cacheKey := fmt.Sprintf("data_%s_%s", symbol, tr)
	payload, err := m.fetch(ctx, m.provider.SeriesURL(symbol, cfg), cacheKey, cfg.Function)
	if err != nil {
		m.degradeData(ctx, symbol, err)
		return models.EmptyStockData()
	}

	series := extractSeries(payload, cfg)
	if len(series) == 0 {
		m.log.Warn("provider payload carried no series",
			logger.String("symbol", symbol),
			logger.String("range", string(tr)),
		)
		return models.EmptyStockData()
	}

	labels, prices := processSeries(series, tr, cfg.Limit)

	data := &models.StockData{
		Labels:    labels,
		Actual:    prices,
		Predicted: []*float64{},
	}

	if tr == models.Range1D {
		m.rngMu.Lock()
		preds := generatePredictions(prices, m.rng)
		m.rngMu.Unlock()
		if len(preds) > 0 {
			data.Labels = append(data.Labels, futureLabels()...)
			predicted := make([]*float64, len(prices), len(prices)+len(preds))
			for i := range preds {
				v := preds[i]
				predicted = append(predicted, &v)
			}
			data.Predicted = predicted
		}
	}

	return data
}

// GetStockQuote returns the latest quote for symbol, or a zero quote when the
// symbol is empty or the provider cannot be reached.
func (m *MarketData) GetStockQuote(ctx context.Context, symbol string) *models.Quote {
	if symbol == "" {
		m.log.Warn("stock quote requested without a symbol")
		return models.EmptyQuote(symbol)
	}

	payload, err := m.fetch(ctx, m.provider.QuoteURL(symbol), "quote_"+symbol, alphavantage.QuoteFunction)
	if err != nil {
		m.degradeQuote(ctx, symbol, err)
		return models.EmptyQuote(symbol)
	}

	q := normalizeQuote(symbol, payload)
	if q.Price != 0 {
		m.metrics.RecordLastPrice(symbol, q.Price)
	}
	return q
}

func (m *MarketData) degradeData(ctx context.Context, symbol string, err error) {
	m.log.Warn("stock data fetch degraded",
		logger.String("symbol", symbol),
		logger.Error(err),
	)
	if m.notifier == nil {
		return
	}
	if errors.Is(err, alphavantage.ErrQuotaExceeded) {
		m.notifier.Notify(ctx, "alert", "Market data", msgQuotaExceeded)
		return
	}
	m.notifier.Notify(ctx, "alert", "Market data", msgDataFailed)
}

func (m *MarketData) degradeQuote(ctx context.Context, symbol string, err error) {
	m.log.Warn("stock quote fetch degraded",
		logger.String("symbol", symbol),
		logger.Error(err),
	)
	if m.notifier == nil {
		return
	}
	if errors.Is(err, alphavantage.ErrQuotaExceeded) {
		m.notifier.Notify(ctx, "alert", "Market data", msgQuotaExceeded)
		return
	}
	m.notifier.Notify(ctx, "alert", "Market data", msgQuoteFailed)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, alphavantage.ErrQuotaExceeded):
		return "quota"
	case errors.Is(err, alphavantage.ErrEmptyPayload):
		return "empty"
	case errors.Is(err, alphavantage.ErrProvider):
		return "provider_error"
	default:
		return "transport_error"
	}
}
