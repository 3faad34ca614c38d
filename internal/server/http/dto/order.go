package dto

import (
	"time"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// OrderRequest carries the contact/delivery details for placing an order.
type OrderRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	BuyingType string `json:"buying_type"`
	Comment    string `json:"comment"`
}

// Details converts the payload into domain order details.
func (r OrderRequest) Details() model.OrderDetails {
	return model.OrderDetails{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		BuyingType: model.BuyingType(r.BuyingType),
		Comment:    r.Comment,
	}
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	BuyingType string    `json:"buying_type"`
	Comment    string    `json:"comment,omitempty"`
	Total      string    `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Phone:      o.Phone,
		Address:    o.Address,
		BuyingType: string(o.BuyingType),
		Comment:    o.Comment,
		Total:      o.Total.StringFixed(2),
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}

// NewOrderListResponse maps a slice of domain orders.
func NewOrderListResponse(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, NewOrderResponse(&orders[i]))
	}
	return result
}

// PaymentIntentResponse mirrors the gateway intent handed to the frontend.
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// NewPaymentIntentResponse maps a domain payment intent.
func NewPaymentIntentResponse(intent *model.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}
}
