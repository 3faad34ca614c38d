package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is a fixed-point decimal with two
// fractional digits; cart math never leaves the decimal domain.
type Product struct {
	ID          int64
	CategoryID  int64
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
}
