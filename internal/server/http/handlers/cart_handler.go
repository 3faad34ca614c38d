package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/server/http/dto"
)

// CartHandler manages the visitor's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Show handles GET /api/cart.
func (h *CartHandler) Show(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), CurrentCartIdentity(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// AddItem handles POST /api/cart/items/:slug.
func (h *CartHandler) AddItem(c *gin.Context) {
	cart, err := h.facade.AddToCart(c.Request.Context(), CurrentCartIdentity(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// ChangeQuantity handles PATCH /api/cart/items/:slug.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.ChangeQuantity(c.Request.Context(), CurrentCartIdentity(c), c.Param("slug"), req.Qty)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// RemoveItem handles DELETE /api/cart/items/:slug.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.facade.RemoveFromCart(c.Request.Context(), CurrentCartIdentity(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrConflict):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
