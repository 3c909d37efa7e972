package food

import "time"

type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateFoodParams struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
}

// UpdateFoodParams carries only the fields the admin actually sent; nil
// pointers keep the stored value.
type UpdateFoodParams struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Stock       *int
}
