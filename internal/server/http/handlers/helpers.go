package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentCartIdentity builds the cart owner identity for the request.
// An authenticated user always outranks the guest session cookie.
func CurrentCartIdentity(c *gin.Context) model.CartIdentity {
	return model.CartIdentity{
		UserID:    CurrentUserID(c),
		SessionID: c.GetString(middleware.SessionIDContextKey),
	}
}
