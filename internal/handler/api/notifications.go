package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	drepo "StockDash/internal/domain/repository"
	"StockDash/internal/usecase"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

type NotificationsHandler struct {
	logger        *xlogger.Logger
	notifications *usecase.Notifications
}

func NewNotificationsHandler(logger *xlogger.Logger, notifications *usecase.Notifications) *NotificationsHandler {
	return &NotificationsHandler{logger: logger, notifications: notifications}
}

func (h *NotificationsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/notifications")
	g.GET("", h.List)
	g.POST("/read-all", h.MarkAllRead)
	g.POST("/:id/read", h.MarkRead)
	g.DELETE("", h.DeleteAll)
	g.DELETE("/:id", h.Delete)
}

func (h *NotificationsHandler) List(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	list, err := h.notifications.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("list notifications failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, list)
}

func (h *NotificationsHandler) MarkRead(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	err := h.notifications.MarkRead(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "notification not found")
	}
	if err != nil {
		h.logger.Error("mark notification read failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}

func (h *NotificationsHandler) MarkAllRead(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	if err := h.notifications.MarkAllRead(c.Request().Context(), userID); err != nil {
		h.logger.Error("mark all notifications read failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}

func (h *NotificationsHandler) Delete(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	err := h.notifications.Delete(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, drepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "notification not found")
	}
	if err != nil {
		h.logger.Error("delete notification failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}

func (h *NotificationsHandler) DeleteAll(c echo.Context) error {
	userID, ok := requireUser(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, msgUserRequired)
	}

	if err := h.notifications.DeleteAll(c.Request().Context(), userID); err != nil {
		h.logger.Error("clear notifications failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.NoContentResponse(c)
}
