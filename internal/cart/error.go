package cart

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrItemIDRequired = errors.New("item id is required")

	// -- Resource State --
	ErrItemNotFound = errors.New("food item not found")
)
