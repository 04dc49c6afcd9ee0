package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	drepo "StockDash/internal/domain/repository"
	xhttp "StockDash/pkg/http"
	"StockDash/pkg/http/middleware"
)

// Router aggregates the API handlers into one registration point and owns
// the health endpoint.
type Router struct {
	handlers []xhttp.Handler
	trades   drepo.TradeStore
}

func NewRouter(trades drepo.TradeStore, handlers ...xhttp.Handler) *Router {
	return &Router{handlers: handlers, trades: trades}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", r.Health)
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}

func (r *Router) Health(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if err := r.trades.Health(c.Request().Context()); err != nil {
		status["status"] = "degraded"
		status["clickhouse"] = err.Error()
		return xhttp.DataResponse(c, http.StatusServiceUnavailable, status)
	}
	return xhttp.SuccessResponse(c, status)
}

// requireUser extracts the authenticated user; handlers answer 401
// themselves when it is absent.
func requireUser(c echo.Context) (string, bool) {
	id, ok := middleware.UserIDFromContext(c.Request().Context())
	return id, ok
}
