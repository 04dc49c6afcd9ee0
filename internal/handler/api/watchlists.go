package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	"StockDash/internal/usecase"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

const msgUserRequired = "missing X-User-ID header"

type WatchlistsHandler struct {
	logger     *xlogger.Logger
	watchlists *usecase.Watchlists
}

func NewWatchlistsHandler(logger *xlogger.Logger, watchlists *usecase.Watchlists) *WatchlistsHandler {
	return &WatchlistsHandler{logger: logger, watchlists: watchlists}
}

func (h *WatchlistsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/watchlists")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Rename)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/items", h.AddItem)
	g.DELETE("/:id/items/:itemID", h.RemoveItem)
}

func (h *WatchlistsHandler) List(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	lists, err := h.watchlists.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("list watchlists failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, lists)
}

func (h *WatchlistsHandler) Create(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.CreateWatchlistRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	w, err := h.watchlists.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		h.logger.Error("create watchlist failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.CreatedResponse(c, w)
}

func (h *WatchlistsHandler) Rename(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.RenameWatchlistRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	err := h.watchlists.Rename(c.Request().Context(), userID, req.ID, req.Name)
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "watchlist not found")
	}
	if err != nil {
		h.logger.Error("rename watchlist failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}

func (h *WatchlistsHandler) Delete(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	err := h.watchlists.Delete(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "watchlist not found")
	}
	if err != nil {
		h.logger.Error("delete watchlist failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}

func (h *WatchlistsHandler) AddItem(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.AddWatchlistItemRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	item, err := h.watchlists.AddItem(c.Request().Context(), userID, req.ID, req.Symbol)
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "watchlist not found")
	}
	if err != nil {
		h.logger.Error("add watchlist item failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.CreatedResponse(c, item)
}

func (h *WatchlistsHandler) RemoveItem(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	err := h.watchlists.RemoveItem(c.Request().Context(), userID, c.Param("id"), c.Param("itemID"))
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "watchlist item not found")
	}
	if err != nil {
		h.logger.Error("remove watchlist item failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}
