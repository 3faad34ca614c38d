package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	testhelpers "github.com/mkazlauskas/shoplt/internal/test"
	. "github.com/mkazlauskas/shoplt/internal/usecase"
)

func newCartFixture() (*CartUseCase, *testhelpers.CartRepositoryStub) {
	carts := testhelpers.NewCartRepositoryStub()
	products := &testhelpers.ProductRepositoryStub{Items: []model.Product{
		{ID: 1, CategoryID: 1, Title: "Notebook", Slug: "notebook", Price: decimal.RequireFromString("500.00")},
		{ID: 2, CategoryID: 1, Title: "Mouse", Slug: "mouse", Price: decimal.RequireFromString("250.00")},
	}}
	return NewCartUseCase(carts, products), carts
}

func TestCartUseCaseResolveCreatesOwnerCart(t *testing.T) {
	uc, _ := newCartFixture()
	owner := int64(7)

	cart, err := uc.Resolve(context.Background(), &owner, "")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if cart.OwnerID == nil || *cart.OwnerID != owner {
		t.Fatalf("expected cart owned by %d, got %+v", owner, cart.OwnerID)
	}
	if cart.ForAnonymousUser {
		t.Fatal("owner cart must not be anonymous")
	}

	again, err := uc.Resolve(context.Background(), &owner, "")
	if err != nil {
		t.Fatalf("second resolve returned error: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("expected same cart %d, got %d", cart.ID, again.ID)
	}
}

func TestCartUseCaseResolveCreatesSessionCart(t *testing.T) {
	uc, _ := newCartFixture()

	cart, err := uc.Resolve(context.Background(), nil, "session-1")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if !cart.ForAnonymousUser {
		t.Fatal("expected anonymous cart")
	}
	if cart.SessionID != "session-1" {
		t.Fatalf("unexpected session id %q", cart.SessionID)
	}
}

func TestCartUseCaseResolveRequiresIdentity(t *testing.T) {
	uc, _ := newCartFixture()
	if _, err := uc.Resolve(context.Background(), nil, ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestCartUseCaseAddItemRecalculatesTotals(t *testing.T) {
	uc, _ := newCartFixture()
	cart, err := uc.Resolve(context.Background(), nil, "s")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	cart, err = uc.AddItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("add item returned error: %v", err)
	}
	if !cart.FinalPrice.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("expected total 500.00, got %s", cart.FinalPrice)
	}
	if cart.TotalProducts != 1 {
		t.Fatalf("expected 1 product, got %d", cart.TotalProducts)
	}
}

func TestCartUseCaseAddItemIsIdempotent(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")

	cart, err := uc.AddItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	cart, err = uc.AddItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("second add returned error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected single line, got %d", len(cart.Items))
	}
	if cart.Items[0].Qty != 1 {
		t.Fatalf("adding twice must not increment quantity, got %d", cart.Items[0].Qty)
	}
}

func TestCartUseCaseAddItemUnknownProduct(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")

	if _, err := uc.AddItem(context.Background(), cart, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCartUseCaseTotalsScenario(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")

	cart, err := uc.AddItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("add notebook: %v", err)
	}
	if !cart.FinalPrice.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("expected 500.00 after first line, got %s", cart.FinalPrice)
	}

	cart, err = uc.AddItem(context.Background(), cart, "mouse")
	if err != nil {
		t.Fatalf("add mouse: %v", err)
	}
	cart, err = uc.SetQuantity(context.Background(), cart, "mouse", 2)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	if !cart.FinalPrice.Equal(decimal.RequireFromString("1000.00")) {
		t.Fatalf("expected 1000.00 after second line, got %s", cart.FinalPrice)
	}
	if cart.TotalProducts != 3 {
		t.Fatalf("expected total products 3 (sum of quantities), got %d", cart.TotalProducts)
	}
}

func TestCartUseCaseSetQuantityRejectsNonPositive(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")
	cart, _ = uc.AddItem(context.Background(), cart, "notebook")

	for _, qty := range []int{0, -1} {
		if _, err := uc.SetQuantity(context.Background(), cart, "notebook", qty); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for qty %d, got %v", qty, err)
		}
	}

	refreshed, err := uc.AddItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("refresh cart: %v", err)
	}
	if refreshed.Items[0].Qty != 1 {
		t.Fatalf("rejected quantity must not mutate state, got qty %d", refreshed.Items[0].Qty)
	}
}

func TestCartUseCaseSetQuantityMissingLine(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")

	if _, err := uc.SetQuantity(context.Background(), cart, "notebook", 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCartUseCaseRemoveItem(t *testing.T) {
	uc, _ := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")
	cart, _ = uc.AddItem(context.Background(), cart, "notebook")
	cart, _ = uc.AddItem(context.Background(), cart, "mouse")

	cart, err := uc.RemoveItem(context.Background(), cart, "notebook")
	if err != nil {
		t.Fatalf("remove item returned error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected single remaining line, got %d", len(cart.Items))
	}
	if !cart.FinalPrice.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("expected 250.00 after removal, got %s", cart.FinalPrice)
	}

	if _, err := uc.RemoveItem(context.Background(), cart, "notebook"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for repeated removal, got %v", err)
	}
}

func TestCartUseCaseFrozenCartRejectsMutations(t *testing.T) {
	uc, carts := newCartFixture()
	cart, _ := uc.Resolve(context.Background(), nil, "s")
	cart, _ = uc.AddItem(context.Background(), cart, "notebook")

	if !carts.Freeze(cart.ID) {
		t.Fatal("freeze failed")
	}
	frozen, err := carts.GetByID(context.Background(), cart.ID)
	if err != nil {
		t.Fatalf("get frozen cart: %v", err)
	}

	if _, err := uc.AddItem(context.Background(), frozen, "mouse"); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict on add, got %v", err)
	}
	if _, err := uc.SetQuantity(context.Background(), frozen, "notebook", 2); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict on set quantity, got %v", err)
	}
	if _, err := uc.RemoveItem(context.Background(), frozen, "notebook"); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict on remove, got %v", err)
	}
}
