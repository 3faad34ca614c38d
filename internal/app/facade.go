package app

import (
	"context"
	"fmt"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/usecase"
)

// PaymentProvider creates payment intents at the gateway. Amounts are in
// minor currency units.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*model.PaymentIntent, error)
}

// StoreFacade is the application surface the HTTP layer talks to. It maps
// transport identities onto domain ones and composes use cases into the
// operations the handlers need.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	carts    *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	payments PaymentProvider
	currency string
}

func NewStoreFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, carts *usecase.CartUseCase, orders *usecase.OrderUseCase, payments PaymentProvider, currency string) *StoreFacade {
	return &StoreFacade{auth: auth, catalog: catalog, carts: carts, orders: orders, payments: payments, currency: currency}
}

func (f *StoreFacade) Register(ctx context.Context, form usecase.RegistrationForm) (string, error) {
	_, token, err := f.auth.Register(ctx, form)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StoreFacade) CategoryWithProducts(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	return f.catalog.CategoryWithProducts(ctx, slug)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *StoreFacade) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return f.catalog.ProductBySlug(ctx, slug)
}

// resolveCart maps a transport identity to the open cart. Registered users
// shop with the cart owned by their customer profile, visitors with the
// cart bound to their session cookie.
func (f *StoreFacade) resolveCart(ctx context.Context, ident model.CartIdentity) (*model.Cart, error) {
	if ident.UserID != 0 {
		customer, err := f.auth.CustomerByUser(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return f.carts.Resolve(ctx, &customer.ID, "")
	}
	return f.carts.Resolve(ctx, nil, ident.SessionID)
}

func (f *StoreFacade) Cart(ctx context.Context, ident model.CartIdentity) (*model.Cart, error) {
	return f.resolveCart(ctx, ident)
}

func (f *StoreFacade) AddToCart(ctx context.Context, ident model.CartIdentity, productSlug string) (*model.Cart, error) {
	cart, err := f.resolveCart(ctx, ident)
	if err != nil {
		return nil, err
	}
	return f.carts.AddItem(ctx, cart, productSlug)
}

func (f *StoreFacade) ChangeQuantity(ctx context.Context, ident model.CartIdentity, productSlug string, qty int) (*model.Cart, error) {
	cart, err := f.resolveCart(ctx, ident)
	if err != nil {
		return nil, err
	}
	return f.carts.SetQuantity(ctx, cart, productSlug, qty)
}

func (f *StoreFacade) RemoveFromCart(ctx context.Context, ident model.CartIdentity, productSlug string) (*model.Cart, error) {
	cart, err := f.resolveCart(ctx, ident)
	if err != nil {
		return nil, err
	}
	return f.carts.RemoveItem(ctx, cart, productSlug)
}

// CheckoutIntent registers a payment intent for the cart total. The total
// is converted from major to minor currency units at the boundary; cart
// math itself never leaves the decimal domain.
func (f *StoreFacade) CheckoutIntent(ctx context.Context, ident model.CartIdentity) (*model.PaymentIntent, error) {
	cart, err := f.resolveCart(ctx, ident)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, fmt.Errorf("cart %d is empty: %w", cart.ID, domainErrors.ErrInvalidInput)
	}

	amount := cart.FinalPrice.Shift(2).IntPart()
	return f.payments.CreateIntent(ctx, amount, f.currency)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, userID int64, details model.OrderDetails) (*model.Order, error) {
	customer, err := f.auth.CustomerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart, err := f.carts.Resolve(ctx, &customer.ID, "")
	if err != nil {
		return nil, err
	}
	return f.orders.Place(ctx, cart, customer.ID, details)
}

func (f *StoreFacade) MarkPaidOnline(ctx context.Context, userID int64) (*model.Order, error) {
	user, err := f.auth.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	customer, err := f.auth.CustomerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart, err := f.carts.Resolve(ctx, &customer.ID, "")
	if err != nil {
		return nil, err
	}
	return f.orders.PaidOnline(ctx, cart, customer, user)
}

func (f *StoreFacade) OrderHistory(ctx context.Context, userID int64) ([]model.Order, error) {
	customer, err := f.auth.CustomerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.orders.History(ctx, customer.ID)
}
