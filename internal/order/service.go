package order

import (
	"context"

	"feastly-be/internal/cart"
	"feastly-be/internal/food"
	"feastly-be/internal/logger"
	"feastly-be/internal/payment"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID uint, customerEmail string, addr Address) (*PlacedOrder, error)
	UserOrders(ctx context.Context, userID uint) ([]Order, error)
	AllOrders(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
	DeleteOrder(ctx context.Context, orderID uint) error
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
	foodRepo food.Repository
	gateway  payment.Gateway
	validate *validator.Validate
}

func NewService(repo Repository, cartRepo cart.Repository, foodRepo food.Repository, gateway payment.Gateway) Service {
	return &service{
		repo:     repo,
		cartRepo: cartRepo,
		foodRepo: foodRepo,
		gateway:  gateway,
		validate: validator.New(),
	}
}

// PlaceOrder snapshots the caller's server-side cart into a new order and
// opens a hosted checkout session. Item name and price are copied by value
// at this moment; later catalog edits never change a placed order.
func (s *service) PlaceOrder(ctx context.Context, userID uint, customerEmail string, addr Address) (*PlacedOrder, error) {
	log := logger.FromCtx(ctx).With(zap.Uint("user_id", userID))

	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.validate.Struct(addr); err != nil {
		return nil, ErrInvalidAddress
	}

	cartData, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartData) == 0 {
		return nil, ErrCartEmpty
	}

	ids := make([]string, 0, len(cartData))
	for id := range cartData {
		ids = append(ids, id)
	}

	foods, err := s.foodRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Entries whose item vanished from the catalog are excluded from the
	// snapshot rather than failing the checkout.
	var subtotal float64
	items := make([]OrderItem, 0, len(foods))
	for _, f := range foods {
		qty := cartData[f.ID]
		if qty <= 0 {
			continue
		}
		items = append(items, OrderItem{
			ItemID:   f.ID,
			Name:     f.Name,
			Price:    f.Price,
			Quantity: qty,
		})
		subtotal += f.Price * float64(qty)
	}

	if subtotal <= 0 {
		return nil, ErrCartEmpty
	}

	o := &Order{
		UserID:  userID,
		Items:   items,
		Address: addr,
		Amount:  subtotal + DeliveryFee,
		Status:  StatusFoodProcessing,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		// The order exists; a stale cart is recoverable and only logged.
		log.Warn("failed to clear cart after order placement",
			zap.Uint("order_id", o.ID), zap.Error(err))
	}

	lineItems := make([]payment.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, payment.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutParams{
		OrderID:       o.ID,
		Amount:        o.Amount,
		DeliveryFee:   DeliveryFee,
		CustomerEmail: customerEmail,
		Items:         lineItems,
	})
	if err != nil {
		log.Error("failed to create checkout session",
			zap.Uint("order_id", o.ID), zap.Error(err))
		return nil, err
	}

	return &PlacedOrder{Order: o, SessionURL: session.URL}, nil
}

func (s *service) UserOrders(ctx context.Context, userID uint) ([]Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) AllOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus moves an order to the given fulfillment state. Only the
// defined labels are accepted, and the state never moves backward; setting
// the current state again is a no-op.
func (s *service) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	target, ok := ParseStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrOrderNotFound
	}

	if statusRank[target] < statusRank[current.Status] {
		return ErrBackwardTransition
	}
	if target == current.Status {
		return nil
	}

	return s.repo.UpdateStatus(ctx, orderID, target)
}

func (s *service) DeleteOrder(ctx context.Context, orderID uint) error {
	return s.repo.Delete(ctx, orderID)
}
