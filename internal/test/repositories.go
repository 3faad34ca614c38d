package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// CategoryRepositoryStub serves categories from a slice.
type CategoryRepositoryStub struct {
	Items []model.Category
	Err   error
}

// List returns configured categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetBySlug finds a category by slug or returns not found.
func (s *CategoryRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub serves products from a slice.
type ProductRepositoryStub struct {
	Items []model.Product
	Err   error
}

// List returns configured products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// ListByCategory filters configured products by category.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Items {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetBySlug finds a product by slug or returns not found.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub keeps carts in memory and recomputes derived totals on
// every line mutation, mirroring the storage contract.
type CartRepositoryStub struct {
	Carts map[int64]*model.Cart
	Next  int64
	Err   error
}

// NewCartRepositoryStub constructs stub repository with initialized state.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64]*model.Cart), Next: 1}
}

// GetByID returns a copy of the stored cart.
func (s *CartRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cart, ok := s.Carts[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *cart
	copied.Items = append([]model.CartItem(nil), cart.Items...)
	return &copied, nil
}

// GetOpenByOwner finds the owner's non-frozen cart.
func (s *CartRepositoryStub) GetOpenByOwner(ctx context.Context, customerID int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for id, cart := range s.Carts {
		if cart.OwnerID != nil && *cart.OwnerID == customerID && !cart.InOrder {
			return s.GetByID(ctx, id)
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetOpenBySession finds the session's non-frozen cart.
func (s *CartRepositoryStub) GetOpenBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for id, cart := range s.Carts {
		if cart.SessionID == sessionID && !cart.InOrder {
			return s.GetByID(ctx, id)
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create registers an empty cart.
func (s *CartRepositoryStub) Create(ctx context.Context, ownerID *int64, sessionID string, anonymous bool) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cart := &model.Cart{
		ID:               s.Next,
		OwnerID:          ownerID,
		SessionID:        sessionID,
		FinalPrice:       decimal.Zero,
		ForAnonymousUser: anonymous,
		CreatedAt:        time.Now(),
	}
	s.Next++
	s.Carts[cart.ID] = cart
	return s.GetByID(ctx, cart.ID)
}

// AddItem inserts a line unless one already exists for the product.
func (s *CartRepositoryStub) AddItem(ctx context.Context, cartID int64, product *model.Product) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	cart, ok := s.Carts[cartID]
	if !ok {
		return false, domainErrors.ErrNotFound
	}
	for _, item := range cart.Items {
		if item.ProductID == product.ID {
			s.recalc(cart)
			return false, nil
		}
	}
	cart.Items = append(cart.Items, model.CartItem{
		ID:         int64(len(cart.Items) + 1),
		CartID:     cartID,
		ProductID:  product.ID,
		Title:      product.Title,
		Slug:       product.Slug,
		UnitPrice:  product.Price,
		Qty:        1,
		FinalPrice: product.Price,
	})
	s.recalc(cart)
	return true, nil
}

// SetItemQuantity updates a line's quantity and derived total.
func (s *CartRepositoryStub) SetItemQuantity(ctx context.Context, cartID, productID int64, qty int) error {
	if s.Err != nil {
		return s.Err
	}
	cart, ok := s.Carts[cartID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Qty = qty
			cart.Items[i].FinalPrice = cart.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
			s.recalc(cart)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// RemoveItem deletes the line for the product.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, cartID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	cart, ok := s.Carts[cartID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			s.recalc(cart)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Freeze marks a stored cart as converted, for order-flow tests.
func (s *CartRepositoryStub) Freeze(cartID int64) bool {
	cart, ok := s.Carts[cartID]
	if !ok || cart.InOrder {
		return false
	}
	cart.InOrder = true
	return true
}

func (s *CartRepositoryStub) recalc(cart *model.Cart) {
	total := decimal.Zero
	count := 0
	for _, item := range cart.Items {
		total = total.Add(item.FinalPrice)
		count += item.Qty
	}
	cart.FinalPrice = total
	cart.TotalProducts = count
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash, email, firstName, lastName string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Email: email, FirstName: firstName, LastName: lastName}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub stores customer profiles for tests.
type CustomerRepositoryStub struct {
	ByUser map[int64]*model.Customer
	ByID   map[int64]*model.Customer
	Next   int64
	Err    error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByUser: make(map[int64]*model.Customer),
		ByID:   make(map[int64]*model.Customer),
		Next:   1,
	}
}

// Create registers a customer profile for the user.
func (s *CustomerRepositoryStub) Create(ctx context.Context, userID int64, phone, address string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	customer := &model.Customer{ID: s.Next, UserID: userID, Phone: phone, Address: address}
	s.Next++
	s.ByUser[userID] = customer
	s.ByID[customer.ID] = customer
	return customer, nil
}

// GetByUser fetches the profile of a user or returns not found.
func (s *CustomerRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByUser[userID]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByID[id]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub records order creation and serves history. When
// linked to a CartRepositoryStub it enforces the single-winner cart freeze.
type OrderRepositoryStub struct {
	CreateFromCartFn func(context.Context, int64, int64, model.OrderDetails, model.OrderStatus) (*model.Order, error)
	ListFn           func(context.Context, int64) ([]model.Order, error)

	Carts  *CartRepositoryStub
	Orders []model.Order
	Next   int64
	Err    error
}

// CreateFromCart freezes the cart (when linked) and records the order.
func (s *OrderRepositoryStub) CreateFromCart(ctx context.Context, cartID, customerID int64, details model.OrderDetails, status model.OrderStatus) (*model.Order, error) {
	if s.CreateFromCartFn != nil {
		return s.CreateFromCartFn(ctx, cartID, customerID, details, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	total := decimal.Zero
	if s.Carts != nil {
		if cart, ok := s.Carts.Carts[cartID]; ok {
			total = cart.FinalPrice
		}
		if !s.Carts.Freeze(cartID) {
			return nil, domainErrors.ErrConflict
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := model.Order{
		ID:         s.Next,
		CustomerID: customerID,
		CartID:     cartID,
		FirstName:  details.FirstName,
		LastName:   details.LastName,
		Phone:      details.Phone,
		Address:    details.Address,
		BuyingType: details.BuyingType,
		Comment:    details.Comment,
		Total:      total,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	s.Next++
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// ListByCustomer returns recorded orders for the customer.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	return result, nil
}
