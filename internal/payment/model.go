package payment

import "time"

type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutParams struct {
	OrderID       uint
	Amount        float64
	DeliveryFee   float64
	Currency      string
	CustomerEmail string
	Items         []LineItem
}

type CheckoutSession struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
