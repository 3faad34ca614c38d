package repository

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// CartRepository persists carts and their line items. Every line mutation
// recalculates the cart's derived totals within the same transaction, so a
// cart read back from storage never carries stale final_price or
// total_products values.
type CartRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Cart, error)
	// GetOpenByOwner returns the customer's current non-frozen cart.
	GetOpenByOwner(ctx context.Context, customerID int64) (*model.Cart, error)
	// GetOpenBySession returns the non-frozen cart bound to an anonymous session.
	GetOpenBySession(ctx context.Context, sessionID string) (*model.Cart, error)
	Create(ctx context.Context, ownerID *int64, sessionID string, anonymous bool) (*model.Cart, error)
	// AddItem inserts a line for the product unless one already exists.
	// Returns whether a new line was created.
	AddItem(ctx context.Context, cartID int64, product *model.Product) (bool, error)
	// SetItemQuantity updates a line's quantity and derived total.
	SetItemQuantity(ctx context.Context, cartID, productID int64, qty int) error
	// RemoveItem deletes the line for the product.
	RemoveItem(ctx context.Context, cartID, productID int64) error
}
