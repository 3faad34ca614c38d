package handlers

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, form usecase.RegistrationForm) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade exposes catalog reads.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryWithProducts(ctx context.Context, slug string) (*model.Category, []model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
}

// CartFacade exposes cart operations for both guests and signed-in users.
type CartFacade interface {
	Cart(ctx context.Context, ident model.CartIdentity) (*model.Cart, error)
	AddToCart(ctx context.Context, ident model.CartIdentity, slug string) (*model.Cart, error)
	ChangeQuantity(ctx context.Context, ident model.CartIdentity, slug string, qty int) (*model.Cart, error)
	RemoveFromCart(ctx context.Context, ident model.CartIdentity, slug string) (*model.Cart, error)
}

// CheckoutFacade exposes order placement and payment operations.
type CheckoutFacade interface {
	CheckoutIntent(ctx context.Context, ident model.CartIdentity) (*model.PaymentIntent, error)
	PlaceOrder(ctx context.Context, userID int64, details model.OrderDetails) (*model.Order, error)
	MarkPaidOnline(ctx context.Context, userID int64) (*model.Order, error)
	OrderHistory(ctx context.Context, userID int64) ([]model.Order, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
}
