package cache

import (
	"encoding/json"
	"testing"
	"time"

	"StockDash/internal/domain/models"
)

func TestGetMissing(t *testing.T) {
	c := NewPayloadCache()
	if _, _, ok := c.Get("quote_AAPL"); ok {
		t.Fatalf("expected miss on empty cache")
	}
}

func TestSetThenGet(t *testing.T) {
	c := NewPayloadCache()
	p := models.ProviderPayload{"Global Quote": json.RawMessage(`{}`)}

	before := time.Now()
	c.Set("quote_AAPL", p)

	got, storedAt, ok := c.Get("quote_AAPL")
	if !ok {
		t.Fatalf("expected hit")
	}
	if _, ok := got["Global Quote"]; !ok {
		t.Fatalf("payload lost: %v", got)
	}
	if storedAt.Before(before) || storedAt.After(time.Now()) {
		t.Fatalf("storedAt out of range: %v", storedAt)
	}
}

func TestSetReplaces(t *testing.T) {
	c := NewPayloadCache()
	c.Set("k", models.ProviderPayload{"a": json.RawMessage(`1`)})
	c.Set("k", models.ProviderPayload{"b": json.RawMessage(`2`)})

	got, _, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected hit")
	}
	if _, stale := got["a"]; stale {
		t.Fatalf("old payload survived replacement")
	}
	if _, ok := got["b"]; !ok {
		t.Fatalf("new payload missing")
	}
	if c.Len() != 1 {
		t.Fatalf("expected single entry, got %d", c.Len())
	}
}
