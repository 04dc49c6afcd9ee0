package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"StockDash/internal/domain/models"
	xhttp "StockDash/pkg/http"
)

// Provider error surfaces, checked in this order against every payload.
var (
	// ErrProvider wraps the provider's explicit "Error Message" field.
	ErrProvider = errors.New("alphavantage: provider error")
	// ErrQuotaExceeded signals the provider's rate-limit "Note" field.
	ErrQuotaExceeded = errors.New("alphavantage: rate limit exceeded")
	// ErrEmptyPayload signals a structurally empty response.
	ErrEmptyPayload = errors.New("alphavantage: empty payload")
)

// QuoteFunction is the provider API function for current quotes.
const QuoteFunction = "GLOBAL_QUOTE"

// Client performs raw calls against the Alpha Vantage query endpoint and
// validates responses. It knows nothing about caching or rate limits; the
// layers above own those.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// SeriesURL assembles the provider query for a time-series request.
func (c *Client) SeriesURL(symbol string, cfg models.RangeConfig) string {
	q := url.Values{}
	q.Set("function", cfg.Function)
	q.Set("symbol", symbol)
	if cfg.Interval != "" {
		q.Set("interval", cfg.Interval)
	}
	q.Set("apikey", c.apiKey)
	return c.baseURL + "?" + q.Encode()
}

// QuoteURL assembles the provider query for a current-quote request.
func (c *Client) QuoteURL(symbol string) string {
	q := url.Values{}
	q.Set("function", QuoteFunction)
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	return c.baseURL + "?" + q.Encode()
}

// Get performs the HTTP call and validates the decoded payload. The client
// timeout bounds the call so a hung request cannot stall the queue forever.
func (c *Client) Get(ctx context.Context, rawURL string) (models.ProviderPayload, error) {
	var payload models.ProviderPayload
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    rawURL,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("alphavantage get: %w", err)
	}

	if err := Validate(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Validate checks the provider's failure surfaces in their documented order:
// explicit error message, then rate-limit note, then empty payload.
func Validate(p models.ProviderPayload) error {
	if raw, ok := p["Error Message"]; ok {
		var msg string
		_ = json.Unmarshal(raw, &msg)
		return fmt.Errorf("%w: %s", ErrProvider, msg)
	}
	if _, ok := p["Note"]; ok {
		return ErrQuotaExceeded
	}
	if len(p) == 0 {
		return ErrEmptyPayload
	}
	return nil
}
