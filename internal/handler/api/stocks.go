package api

import (
	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

// StocksHandler serves chart data and quotes. The market-data layer is
// total, so these handlers never answer 5xx for provider trouble; a degraded
// fetch comes back as an empty chart or zero quote.
type StocksHandler struct {
	logger *xlogger.Logger
	market drepo.MarketData
}

func NewStocksHandler(logger *xlogger.Logger, market drepo.MarketData) *StocksHandler {
	return &StocksHandler{logger: logger, market: market}
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/stocks")
	g.GET("/:symbol/data", h.Data)
	g.GET("/:symbol/quote", h.Quote)
}

func (h *StocksHandler) Data(c echo.Context) error {
	req := &models.StockDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tr := models.NormalizeTimeRange(req.Range)

	data := h.market.GetStockData(c.Request().Context(), req.Symbol, tr)
	return xhttp.SuccessResponse(c, data)
}

func (h *StocksHandler) Quote(c echo.Context) error {
	req := &models.StockQuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	quote := h.market.GetStockQuote(c.Request().Context(), req.Symbol)
	return xhttp.SuccessResponse(c, quote)
}
