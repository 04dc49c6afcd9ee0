package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"StockDash/pkg/logger"
)

func TestRequestLoggingEmitsStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogging(logger.NewWithWriter(&buf)))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"method":"GET"`) {
		t.Fatalf("log line missing method: %s", line)
	}
	if !strings.Contains(line, `"status":200`) {
		t.Fatalf("log line missing status: %s", line)
	}
	if !strings.Contains(line, `"uri":"/ping"`) {
		t.Fatalf("log line missing uri: %s", line)
	}
}

func TestRecoverTurnsPanicIntoInternalError(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(Recover(logger.NewWithWriter(&buf)))
	e.GET("/boom", func(echo.Context) error {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("panic was not logged: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Fatalf("panic value missing from log: %s", buf.String())
	}
}

func TestMiddlewareAcceptsNilLogger(t *testing.T) {
	e := echo.New()
	e.Use(Recover(nil))
	e.Use(RequestLogging(nil))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
