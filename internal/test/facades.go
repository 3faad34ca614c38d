package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/usecase"
)

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegistrationForm) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, form usecase.RegistrationForm) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, form)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CatalogFacadeStub serves catalog reads for handler tests.
type CatalogFacadeStub struct {
	CategoriesFn func(context.Context) ([]model.Category, error)
	CategoryFn   func(context.Context, string) (*model.Category, []model.Product, error)
	ProductsFn   func(context.Context) ([]model.Product, error)
	ProductFn    func(context.Context, string) (*model.Product, error)
}

// Categories returns configured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Notebooks", Slug: "notebooks"}}, nil
}

// CategoryWithProducts returns a category and its products.
func (s CatalogFacadeStub) CategoryWithProducts(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, slug)
	}
	return &model.Category{ID: 1, Name: "Notebooks", Slug: slug}, []model.Product{SampleProduct()}, nil
}

// Products returns the configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{SampleProduct()}, nil
}

// ProductBySlug returns a single product.
func (s CatalogFacadeStub) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, slug)
	}
	product := SampleProduct()
	product.Slug = slug
	return &product, nil
}

// CartFacadeStub simulates cart operations for handler tests.
type CartFacadeStub struct {
	CartFn     func(context.Context, model.CartIdentity) (*model.Cart, error)
	AddFn      func(context.Context, model.CartIdentity, string) (*model.Cart, error)
	ChangeFn   func(context.Context, model.CartIdentity, string, int) (*model.Cart, error)
	RemoveFn   func(context.Context, model.CartIdentity, string) (*model.Cart, error)
	DefaultVal *model.Cart
}

func (s CartFacadeStub) defaultCart() *model.Cart {
	if s.DefaultVal != nil {
		return s.DefaultVal
	}
	return &model.Cart{ID: 1, FinalPrice: decimal.Zero}
}

// Cart returns the current cart snapshot.
func (s CartFacadeStub) Cart(ctx context.Context, ident model.CartIdentity) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, ident)
	}
	return s.defaultCart(), nil
}

// AddToCart puts a product into the cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, ident model.CartIdentity, slug string) (*model.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, ident, slug)
	}
	return s.defaultCart(), nil
}

// ChangeQuantity updates a line's quantity.
func (s CartFacadeStub) ChangeQuantity(ctx context.Context, ident model.CartIdentity, slug string, qty int) (*model.Cart, error) {
	if s.ChangeFn != nil {
		return s.ChangeFn(ctx, ident, slug, qty)
	}
	return s.defaultCart(), nil
}

// RemoveFromCart deletes a line from the cart.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, ident model.CartIdentity, slug string) (*model.Cart, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, ident, slug)
	}
	return s.defaultCart(), nil
}

// CheckoutFacadeStub simulates checkout and order operations.
type CheckoutFacadeStub struct {
	IntentFn     func(context.Context, model.CartIdentity) (*model.PaymentIntent, error)
	PlaceFn      func(context.Context, int64, model.OrderDetails) (*model.Order, error)
	PaidOnlineFn func(context.Context, int64) (*model.Order, error)
	HistoryFn    func(context.Context, int64) ([]model.Order, error)
}

// CheckoutIntent returns a payment intent for the cart total.
func (s CheckoutFacadeStub) CheckoutIntent(ctx context.Context, ident model.CartIdentity) (*model.PaymentIntent, error) {
	if s.IntentFn != nil {
		return s.IntentFn(ctx, ident)
	}
	return &model.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 50000, Currency: "eur"}, nil
}

// PlaceOrder places an order for the user's cart.
func (s CheckoutFacadeStub) PlaceOrder(ctx context.Context, userID int64, details model.OrderDetails) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, details)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusNew, Total: decimal.New(500, 0), CreatedAt: time.Unix(0, 0)}, nil
}

// MarkPaidOnline records an order paid through the online flow.
func (s CheckoutFacadeStub) MarkPaidOnline(ctx context.Context, userID int64) (*model.Order, error) {
	if s.PaidOnlineFn != nil {
		return s.PaidOnlineFn(ctx, userID)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusPaid}, nil
}

// OrderHistory returns the user's orders.
func (s CheckoutFacadeStub) OrderHistory(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusNew}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
}

// PaymentProviderStub creates intents for tests.
type PaymentProviderStub struct {
	CreateFn func(context.Context, int64, string) (*model.PaymentIntent, error)
	Intent   *model.PaymentIntent
	Err      error
}

// CreateIntent returns configured response or a default intent.
func (s PaymentProviderStub) CreateIntent(ctx context.Context, amount int64, currency string) (*model.PaymentIntent, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount, currency)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Intent != nil {
		return s.Intent, nil
	}
	return &model.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret", Amount: amount, Currency: currency}, nil
}

// SampleProduct returns a product used across handler tests.
func SampleProduct() model.Product {
	return model.Product{
		ID:         1,
		CategoryID: 1,
		Title:      "Notebook",
		Slug:       "test-slug",
		Price:      decimal.New(500, 0),
		CreatedAt:  time.Unix(0, 0),
	}
}
