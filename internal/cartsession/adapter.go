package cartsession

import (
	"context"

	"feastly-be/internal/cart"
)

// serviceSyncer mirrors a session's mutations into the server-side cart
// store on behalf of one authenticated user.
type serviceSyncer struct {
	svc    cart.Service
	userID uint
}

// NewServiceSyncer adapts the cart service to the Syncer contract for the
// given user.
func NewServiceSyncer(svc cart.Service, userID uint) Syncer {
	return &serviceSyncer{svc: svc, userID: userID}
}

func (s *serviceSyncer) AddItem(ctx context.Context, itemID string) error {
	return s.svc.AddItem(ctx, s.userID, itemID)
}

func (s *serviceSyncer) RemoveItem(ctx context.Context, itemID string) error {
	return s.svc.RemoveItem(ctx, s.userID, itemID)
}

func (s *serviceSyncer) Fetch(ctx context.Context) (map[string]int, error) {
	data, err := s.svc.GetCart(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	return data, nil
}
