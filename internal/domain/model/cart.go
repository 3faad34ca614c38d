package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a single cart line: one product, a quantity and the derived
// line total qty × unit price. FinalPrice is recomputed on every quantity
// change and never written directly.
type CartItem struct {
	ID         int64
	CartID     int64
	ProductID  int64
	Title      string
	Slug       string
	UnitPrice  decimal.Decimal
	Qty        int
	FinalPrice decimal.Decimal
}

// Cart aggregates line items for a customer or an anonymous session.
// TotalProducts is the sum of line quantities and FinalPrice the sum of
// line totals; both are derived and only ever written by recalculation.
// Once InOrder is set the cart is frozen and rejects all mutations.
type Cart struct {
	ID               int64
	OwnerID          *int64
	SessionID        string
	Items            []CartItem
	TotalProducts    int
	FinalPrice       decimal.Decimal
	InOrder          bool
	ForAnonymousUser bool
	CreatedAt        time.Time
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartIdentity names whose cart an operation targets: a registered user by
// ID or an anonymous visitor by session. UserID wins when both are set.
type CartIdentity struct {
	UserID    int64
	SessionID string
}
