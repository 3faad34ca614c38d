package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDContextKey is a gin context key for the anonymous cart session.
	SessionIDContextKey = "cartSession"
	cartCookieName      = "shoplt_cart"

	// Anonymous carts outlive the browser session for 30 days.
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// CartSession binds anonymous visitors to a cart via a random session
// cookie, issuing one on first contact.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cartCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cartCookieName, sessionID, cartCookieMaxAge, "/", "", false, true)
		}
		c.Set(SessionIDContextKey, sessionID)
		c.Next()
	}
}
