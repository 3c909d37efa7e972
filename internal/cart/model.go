package cart

import "time"

// CartData is the per-user cart mapping of food item id to quantity.
// Quantities held here are always positive; an entry is deleted outright when
// its quantity reaches zero.
type CartData map[string]int

type CartItem struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
