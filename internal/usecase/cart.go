package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/domain/repository"
)

// CartUseCase owns the cart aggregate: resolving the active cart for a
// customer or anonymous session and mutating its line items. Derived totals
// are recomputed by the repository inside the mutation's transaction, so
// every returned cart is consistent.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Resolve returns the open cart for the given owner or anonymous session,
// creating one on first use. Exactly one of ownerID/sessionID must be set.
func (u *CartUseCase) Resolve(ctx context.Context, ownerID *int64, sessionID string) (*model.Cart, error) {
	if ownerID != nil {
		cart, err := u.carts.GetOpenByOwner(ctx, *ownerID)
		if err == nil {
			return cart, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
		return u.carts.Create(ctx, ownerID, "", false)
	}

	if sessionID == "" {
		return nil, fmt.Errorf("cart owner or session required: %w", domainErrors.ErrInvalidInput)
	}

	cart, err := u.carts.GetOpenBySession(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	return u.carts.Create(ctx, nil, sessionID, true)
}

// AddItem puts a product into the cart. Adding a product that is already in
// the cart is a no-op for creation: the existing line is kept as is and
// quantity changes must go through SetQuantity.
func (u *CartUseCase) AddItem(ctx context.Context, cart *model.Cart, productSlug string) (*model.Cart, error) {
	if cart.InOrder {
		return nil, fmt.Errorf("cart %d is frozen: %w", cart.ID, domainErrors.ErrConflict)
	}

	product, err := u.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	if _, err := u.carts.AddItem(ctx, cart.ID, product); err != nil {
		return nil, err
	}
	return u.carts.GetByID(ctx, cart.ID)
}

// SetQuantity changes a line's quantity. Quantity must be a positive
// integer; invalid values are rejected before any state is touched.
func (u *CartUseCase) SetQuantity(ctx context.Context, cart *model.Cart, productSlug string, qty int) (*model.Cart, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer: %w", domainErrors.ErrInvalidInput)
	}
	if cart.InOrder {
		return nil, fmt.Errorf("cart %d is frozen: %w", cart.ID, domainErrors.ErrConflict)
	}

	product, err := u.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	if err := u.carts.SetItemQuantity(ctx, cart.ID, product.ID, qty); err != nil {
		return nil, err
	}
	return u.carts.GetByID(ctx, cart.ID)
}

// RemoveItem deletes a line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, cart *model.Cart, productSlug string) (*model.Cart, error) {
	if cart.InOrder {
		return nil, fmt.Errorf("cart %d is frozen: %w", cart.ID, domainErrors.ErrConflict)
	}

	product, err := u.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	if err := u.carts.RemoveItem(ctx, cart.ID, product.ID); err != nil {
		return nil, err
	}
	return u.carts.GetByID(ctx, cart.ID)
}

func isNotFound(err error) bool {
	return errors.Is(err, domainErrors.ErrNotFound)
}
