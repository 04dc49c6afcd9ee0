package api

import (
	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	"StockDash/internal/usecase"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

type SettingsHandler struct {
	logger   *xlogger.Logger
	settings *usecase.Settings
}

func NewSettingsHandler(logger *xlogger.Logger, settings *usecase.Settings) *SettingsHandler {
	return &SettingsHandler{logger: logger, settings: settings}
}

func (h *SettingsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/settings")
	g.GET("", h.Get)
	g.PUT("", h.Update)
}

func (h *SettingsHandler) Get(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	s, err := h.settings.Get(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("get settings failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, s)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}
	req := &models.UpdateSettingsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	s, err := h.settings.Update(c.Request().Context(), userID, &models.UserSettings{
		Theme:              req.Theme,
		Notifications:      req.Notifications,
		TradingPreferences: req.TradingPreferences,
		SecuritySettings:   req.SecuritySettings,
	})
	if err != nil {
		h.logger.Error("update settings failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, s)
}
