package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// cartSessionCookie names the cookie that keys a shopper's cart. Carts are
// session-scoped, not account-scoped, so guests can shop too.
const cartSessionCookie = "cart_session"

// cartSessionID returns the shopper's cart session, minting a new one (and
// setting the cookie) when the request carries none.
func cartSessionID(c echo.Context, ttl time.Duration) string {
	if cookie, err := c.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
