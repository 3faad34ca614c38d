package model

// PaymentIntent mirrors the gateway's intent object. Amount is in minor
// currency units; ClientSecret is opaque and handed to the frontend as-is.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}
