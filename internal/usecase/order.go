package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/domain/repository"
)

// OrderUseCase converts finalized carts into orders. The cart freeze and
// the order insert are a single transaction in the repository; under
// concurrent placement exactly one call wins and the rest observe
// ErrConflict.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place creates an order with status new from the cart, snapshotting the
// validated contact details and the cart totals, and freezes the cart.
func (u *OrderUseCase) Place(ctx context.Context, cart *model.Cart, customerID int64, details model.OrderDetails) (*model.Order, error) {
	if err := ValidateOrderDetails(details); err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, fmt.Errorf("cart %d is empty: %w", cart.ID, domainErrors.ErrInvalidInput)
	}
	if cart.InOrder {
		return nil, fmt.Errorf("cart %d already converted to an order: %w", cart.ID, domainErrors.ErrConflict)
	}

	return u.orders.CreateFromCart(ctx, cart.ID, customerID, details, model.OrderStatusNew)
}

// PaidOnline creates an order directly in the paid status after a
// confirmed online payment, snapshotting contact data from the customer
// profile with self-pickup delivery.
func (u *OrderUseCase) PaidOnline(ctx context.Context, cart *model.Cart, customer *model.Customer, user *model.User) (*model.Order, error) {
	if cart.IsEmpty() {
		return nil, fmt.Errorf("cart %d is empty: %w", cart.ID, domainErrors.ErrInvalidInput)
	}
	if cart.InOrder {
		return nil, fmt.Errorf("cart %d already converted to an order: %w", cart.ID, domainErrors.ErrConflict)
	}

	details := model.OrderDetails{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      customer.Phone,
		Address:    customer.Address,
		BuyingType: model.BuyingTypeSelf,
	}
	return u.orders.CreateFromCart(ctx, cart.ID, customer.ID, details, model.OrderStatusPaid)
}

// History returns the customer's orders, newest first.
func (u *OrderUseCase) History(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}
