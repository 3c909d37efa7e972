package payment

import "context"

// Gateway creates hosted checkout sessions. Order placement hands the
// customer off to the returned URL; the backend never touches card data.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
}
