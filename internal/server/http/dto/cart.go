package dto

import "github.com/mkazlauskas/shoplt/internal/domain/model"

// QuantityRequest carries the desired quantity for a cart line.
type QuantityRequest struct {
	Qty int `json:"qty"`
}

// CartItemResponse describes a single cart line.
type CartItemResponse struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	UnitPrice  string `json:"unit_price"`
	Qty        int    `json:"qty"`
	FinalPrice string `json:"final_price"`
}

// CartResponse describes the cart with its derived totals.
type CartResponse struct {
	ID            int64              `json:"id"`
	Items         []CartItemResponse `json:"items"`
	TotalProducts int                `json:"total_products"`
	FinalPrice    string             `json:"final_price"`
	InOrder       bool               `json:"in_order"`
}

// NewCartResponse maps a domain cart.
func NewCartResponse(cart *model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			Title:      item.Title,
			Slug:       item.Slug,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			Qty:        item.Qty,
			FinalPrice: item.FinalPrice.StringFixed(2),
		})
	}
	return CartResponse{
		ID:            cart.ID,
		Items:         items,
		TotalProducts: cart.TotalProducts,
		FinalPrice:    cart.FinalPrice.StringFixed(2),
		InOrder:       cart.InOrder,
	}
}
