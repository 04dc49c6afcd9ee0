package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the opaque user identifier assigned by the external
// identity provider. This service trusts it as-is; session validation is out
// of scope.
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// WithUserID returns a context carrying the user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext extracts the user identifier, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// UserContext copies the user header into the request context so layers
// below the transport can attribute work to a user.
func UserContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.Request().Header.Get(HeaderUserID); id != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(WithUserID(req.Context(), id)))
			}
			return next(c)
		}
	}
}
