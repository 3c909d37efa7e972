package order

import "time"

type OrderStatus string

// Fulfillment states, in fulfillment order. Transitions never move backward.
const (
	StatusFoodProcessing OrderStatus = "Food Processing"
	StatusOutForDelivery OrderStatus = "Out For Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// statusRank orders the states for the forward-only transition guard.
var statusRank = map[OrderStatus]int{
	StatusFoodProcessing: 0,
	StatusOutForDelivery: 1,
	StatusDelivered:      2,
}

// DeliveryFee is the flat charge added on top of the cart subtotal. It is
// only applied when the subtotal is positive.
const DeliveryFee = 2.0

// Address is the delivery destination captured at checkout. Every field is
// mandatory; partial orders are not accepted.
type Address struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zipcode   string `json:"zipcode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// OrderItem is a by-value snapshot of a cart entry taken at placement time.
// Later catalog edits never reach back into it.
type OrderItem struct {
	ID       uint    `json:"-"`
	OrderID  uint    `json:"-"`
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Items     []OrderItem `json:"items"`
	Address   Address     `json:"address"`
	Amount    float64     `json:"amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"-"`
}

// PlacedOrder pairs a freshly created order with the hosted-payment URL the
// storefront redirects to.
type PlacedOrder struct {
	Order      *Order
	SessionURL string
}

// ParseStatus maps a wire label onto a defined status. No code path may set
// an undefined status string.
func ParseStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	_, ok := statusRank[status]
	return status, ok
}
