package repository

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// CreateFromCart atomically freezes the cart and inserts an order
	// snapshotting the given details and the cart's current totals. When
	// the cart is already frozen it fails with ErrConflict and inserts
	// nothing; both writes commit together or not at all.
	CreateFromCart(ctx context.Context, cartID, customerID int64, details model.OrderDetails, status model.OrderStatus) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}
