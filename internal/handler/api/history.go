package api

import (
	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	"StockDash/internal/usecase"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

type HistoryHandler struct {
	logger  *xlogger.Logger
	history *usecase.TradingHistory
}

func NewHistoryHandler(logger *xlogger.Logger, history *usecase.TradingHistory) *HistoryHandler {
	return &HistoryHandler{logger: logger, history: history}
}

func (h *HistoryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/history")
	g.GET("", h.List)
	g.POST("", h.Record)
}

func (h *HistoryHandler) List(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.ListTradesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	trades, err := h.history.List(c.Request().Context(), userID, req.Limit)
	if err != nil {
		h.logger.Error("list trades failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, trades)
}

func (h *HistoryHandler) Record(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.RecordTradeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	trade, err := h.history.Record(c.Request().Context(), userID, &models.Trade{
		Symbol:     req.Symbol,
		Type:       req.Type,
		Price:      req.Price,
		Quantity:   req.Quantity,
		ProfitLoss: req.ProfitLoss,
	})
	if err != nil {
		h.logger.Error("record trade failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.CreatedResponse(c, trade)
}
