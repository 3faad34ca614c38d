package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order fulfillment lifecycle. Transitions are
// forward-only: new → in_progress → is_ready → completed, with paid
// reachable directly from new after an online payment confirmation.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "is_ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusPaid       OrderStatus = "paid"
)

// BuyingType selects how the customer receives the order.
type BuyingType string

const (
	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

// Order snapshots contact fields and the cart total at placement time, so
// later cart or profile edits cannot change what was ordered.
type Order struct {
	ID         int64
	CustomerID int64
	CartID     int64
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	BuyingType BuyingType
	Comment    string
	Total      decimal.Decimal
	Status     OrderStatus
	CreatedAt  time.Time
}

// OrderDetails carries the contact/delivery fields snapshotted into an
// order at creation.
type OrderDetails struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	BuyingType BuyingType
	Comment    string
}
