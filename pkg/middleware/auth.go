package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/token"
)

// UID returns the authenticated farmer id set by RequireAuth/OptionalAuth,
// or "" when the request carried no valid session.
func UID(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

// RequireAuth resolves the session cookie into a farmer id once per request
// and rejects unauthenticated callers with 401 before any handler runs.
func RequireAuth(tm *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := uidFromRequest(c, tm)
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// OptionalAuth sets the farmer id when a valid session is present and passes
// through otherwise. Used by endpoints that soft-fail for anonymous callers.
func OptionalAuth(tm *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid := uidFromRequest(c, tm); uid != "" {
				c.Set("uid", uid)
			}
			return next(c)
		}
	}
}

func uidFromRequest(c echo.Context, tm *token.Manager) string {
	ck, err := c.Cookie(tm.CookieName())
	if err != nil || ck.Value == "" {
		return ""
	}
	claims, err := tm.Parse(ck.Value)
	if err != nil || claims.FarmerID == "" {
		return ""
	}
	return claims.FarmerID
}
