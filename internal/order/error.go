package order

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUnauthorized = errors.New("unauthorized")

	// -- Validation & Input --
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInvalidAddress     = errors.New("all address fields are required")
	ErrInvalidStatus      = errors.New("undefined order status")
	ErrBackwardTransition = errors.New("order status cannot move backward")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
