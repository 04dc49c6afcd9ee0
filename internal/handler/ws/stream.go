package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"StockDash/internal/usecase"
	xhttp "StockDash/pkg/http"
	"StockDash/pkg/http/middleware"
	xlogger "StockDash/pkg/logger"
)

const writeTimeout = 10 * time.Second

// StreamHandler pushes the caller's watchlists, with live quotes merged in,
// over a WebSocket at a fixed interval. One connection serves one user; the
// connection closes when the client goes away or a write fails.
type StreamHandler struct {
	logger     *xlogger.Logger
	watchlists *usecase.Watchlists
	interval   time.Duration

	upgrader websocket.Upgrader
}

func NewStreamHandler(logger *xlogger.Logger, watchlists *usecase.Watchlists, interval time.Duration) *StreamHandler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StreamHandler{
		logger:     logger,
		watchlists: watchlists,
		interval:   interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Browser clients send the user header via the initial HTTP
			// request; origin policy is enforced upstream.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/watchlist", h.Stream)
}

func (h *StreamHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "missing X-User-ID header")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	defer conn.Close()

	h.logger.Info("watchlist stream opened", xlogger.String("user_id", userID))

	// Drain client frames so close and ping control messages are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// First frame immediately, then one per tick.
	if err := h.push(c, conn, userID); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			h.logger.Info("watchlist stream closed", xlogger.String("user_id", userID))
			return nil
		case <-ticker.C:
			if err := h.push(c, conn, userID); err != nil {
				return nil
			}
		}
	}
}

func (h *StreamHandler) push(c echo.Context, conn *websocket.Conn, userID string) error {
	lists, err := h.watchlists.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Warn("watchlist stream fetch failed",
			xlogger.String("user_id", userID),
			xlogger.Error(err),
		)
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(map[string]interface{}{
		"type":       "watchlists",
		"watchlists": lists,
		"as_of":      time.Now().UTC(),
	}); err != nil {
		h.logger.Warn("watchlist stream write failed",
			xlogger.String("user_id", userID),
			xlogger.Error(err),
		)
		return err
	}
	return nil
}
