package food

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("name, price, and category are required")
	ErrInvalidPrice  = errors.New("price must be non-negative")
	ErrImageRequired = errors.New("image is required")

	// -- Resource State --
	ErrFoodNotFound = errors.New("food not found")
)
