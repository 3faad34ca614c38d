package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	testhelpers "github.com/mkazlauskas/shoplt/internal/test"
	"github.com/mkazlauskas/shoplt/internal/usecase"
)

type facadeFixture struct {
	facade    *StoreFacade
	users     *testhelpers.UserRepositoryStub
	customers *testhelpers.CustomerRepositoryStub
	carts     *testhelpers.CartRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	payments  *testhelpers.PaymentProviderStub
}

func newFacadeFixture() *facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	customers := testhelpers.NewCustomerRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(users, customers, testhelpers.HasherStub{}, strategy)

	categories := &testhelpers.CategoryRepositoryStub{Items: []model.Category{{ID: 1, Name: "Notebooks", Slug: "notebooks"}}}
	products := &testhelpers.ProductRepositoryStub{Items: []model.Product{
		{ID: 1, CategoryID: 1, Title: "Notebook", Slug: "notebook", Price: decimal.RequireFromString("500.00")},
	}}
	catalogUC := usecase.NewCatalogUseCase(categories, products)

	carts := testhelpers.NewCartRepositoryStub()
	cartUC := usecase.NewCartUseCase(carts, products)

	orders := &testhelpers.OrderRepositoryStub{Carts: carts}
	orderUC := usecase.NewOrderUseCase(orders)

	payments := &testhelpers.PaymentProviderStub{}

	facade := NewStoreFacade(authUC, catalogUC, cartUC, orderUC, payments, "eur")
	return &facadeFixture{
		facade:    facade,
		users:     users,
		customers: customers,
		carts:     carts,
		orders:    orders,
		payments:  payments,
	}
}

func registerCustomer(t *testing.T, f *facadeFixture) int64 {
	t.Helper()
	form := usecase.RegistrationForm{
		Login:           "ivan",
		Password:        "secret",
		ConfirmPassword: "secret",
		Email:           "ivan@example.com",
		FirstName:       "Ivan",
		LastName:        "Petrov",
		Phone:           "+37060000000",
		Address:         "Vilnius",
	}
	if _, err := f.facade.Register(context.Background(), form); err != nil {
		t.Fatalf("register: %v", err)
	}
	user, err := f.users.GetByLogin(context.Background(), "ivan")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	return user.ID
}

func TestStoreFacadeAuth(t *testing.T) {
	f := newFacadeFixture()
	userID := registerCustomer(t, f)

	token, err := f.facade.Authenticate(context.Background(), "ivan", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	if _, ok := f.customers.ByUser[userID]; !ok {
		t.Fatal("customer profile missing after registration")
	}
}

func TestStoreFacadeCatalog(t *testing.T) {
	f := newFacadeFixture()

	categories, err := f.facade.Categories(context.Background())
	if err != nil || len(categories) != 1 {
		t.Fatalf("unexpected categories: %v %v", categories, err)
	}

	category, products, err := f.facade.CategoryWithProducts(context.Background(), "notebooks")
	if err != nil || category.Slug != "notebooks" || len(products) != 1 {
		t.Fatalf("unexpected category result: %v %v %v", category, products, err)
	}

	product, err := f.facade.ProductBySlug(context.Background(), "notebook")
	if err != nil || product.ID != 1 {
		t.Fatalf("unexpected product: %v %v", product, err)
	}
}

func TestStoreFacadeGuestCartFlow(t *testing.T) {
	f := newFacadeFixture()
	ident := model.CartIdentity{SessionID: "guest-session"}

	cart, err := f.facade.Cart(context.Background(), ident)
	if err != nil {
		t.Fatalf("cart returned error: %v", err)
	}
	if !cart.ForAnonymousUser {
		t.Fatal("expected anonymous cart")
	}

	cart, err = f.facade.AddToCart(context.Background(), ident, "notebook")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if !cart.FinalPrice.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("unexpected total %s", cart.FinalPrice)
	}

	cart, err = f.facade.ChangeQuantity(context.Background(), ident, "notebook", 3)
	if err != nil {
		t.Fatalf("change returned error: %v", err)
	}
	if cart.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", cart.TotalProducts)
	}

	cart, err = f.facade.RemoveFromCart(context.Background(), ident, "notebook")
	if err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestStoreFacadeUserCartUsesCustomerProfile(t *testing.T) {
	f := newFacadeFixture()
	userID := registerCustomer(t, f)
	ident := model.CartIdentity{UserID: userID}

	cart, err := f.facade.AddToCart(context.Background(), ident, "notebook")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	customer := f.customers.ByUser[userID]
	if cart.OwnerID == nil || *cart.OwnerID != customer.ID {
		t.Fatalf("cart not bound to customer %d: %+v", customer.ID, cart)
	}
}

func TestStoreFacadeCheckoutIntent(t *testing.T) {
	f := newFacadeFixture()
	ident := model.CartIdentity{SessionID: "guest"}
	if _, err := f.facade.AddToCart(context.Background(), ident, "notebook"); err != nil {
		t.Fatalf("add: %v", err)
	}

	intent, err := f.facade.CheckoutIntent(context.Background(), ident)
	if err != nil {
		t.Fatalf("intent returned error: %v", err)
	}
	if intent.Amount != 50000 {
		t.Fatalf("expected 50000 minor units, got %d", intent.Amount)
	}
	if intent.Currency != "eur" {
		t.Fatalf("unexpected currency %q", intent.Currency)
	}
}

func TestStoreFacadeCheckoutIntentEmptyCart(t *testing.T) {
	f := newFacadeFixture()
	if _, err := f.facade.CheckoutIntent(context.Background(), model.CartIdentity{SessionID: "guest"}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestStoreFacadePlaceOrder(t *testing.T) {
	f := newFacadeFixture()
	userID := registerCustomer(t, f)
	ident := model.CartIdentity{UserID: userID}
	if _, err := f.facade.AddToCart(context.Background(), ident, "notebook"); err != nil {
		t.Fatalf("add: %v", err)
	}

	details := model.OrderDetails{
		FirstName:  "Ivan",
		LastName:   "Petrov",
		Phone:      "+37060000000",
		Address:    "Vilnius",
		BuyingType: model.BuyingTypeDelivery,
	}
	order, err := f.facade.PlaceOrder(context.Background(), userID, details)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.Status != model.OrderStatusNew {
		t.Fatalf("expected new status, got %q", order.Status)
	}
	if !order.Total.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("unexpected total %s", order.Total)
	}

	history, err := f.facade.OrderHistory(context.Background(), userID)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected history: %v %v", history, err)
	}
}

func TestStoreFacadeMarkPaidOnline(t *testing.T) {
	f := newFacadeFixture()
	userID := registerCustomer(t, f)
	ident := model.CartIdentity{UserID: userID}
	if _, err := f.facade.AddToCart(context.Background(), ident, "notebook"); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := f.facade.MarkPaidOnline(context.Background(), userID)
	if err != nil {
		t.Fatalf("paid online returned error: %v", err)
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("expected paid status, got %q", order.Status)
	}
	if order.Phone != "+37060000000" {
		t.Fatalf("profile not snapshotted: %+v", order)
	}
}

func TestStoreFacadeUnknownUser(t *testing.T) {
	f := newFacadeFixture()
	if _, err := f.facade.Cart(context.Background(), model.CartIdentity{UserID: 404}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.facade.OrderHistory(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
