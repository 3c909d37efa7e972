package cartsession

import (
	"context"
	"testing"

	"feastly-be/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCartService records calls made on behalf of the bound user.
type stubCartService struct {
	userID uint
	adds   []string
	stored cart.CartData
}

func (s *stubCartService) AddItem(ctx context.Context, userID uint, itemID string) error {
	s.userID = userID
	s.adds = append(s.adds, itemID)
	return nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, userID uint, itemID string) error {
	s.userID = userID
	return nil
}

func (s *stubCartService) GetCart(ctx context.Context, userID uint) (cart.CartData, error) {
	s.userID = userID
	return s.stored, nil
}

func (s *stubCartService) ClearCart(ctx context.Context, userID uint) error {
	s.userID = userID
	return nil
}

func TestServiceSyncer(t *testing.T) {
	ctx := context.Background()
	svc := &stubCartService{stored: cart.CartData{"f1": 2}}
	syncer := NewServiceSyncer(svc, 42)

	remote, err := syncer.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"f1": 2}, remote)
	assert.Equal(t, uint(42), svc.userID)

	require.NoError(t, syncer.AddItem(ctx, "f2"))
	assert.Equal(t, []string{"f2"}, svc.adds)
}

func TestSessionWithServiceSyncer(t *testing.T) {
	ctx := context.Background()
	svc := &stubCartService{stored: cart.CartData{"f1": 1}}

	s := New(&stubCatalog{prices: map[string]float64{"f1": 5}})
	require.NoError(t, s.Attach(ctx, NewServiceSyncer(svc, 42)))
	assert.Equal(t, 1, s.Quantity("f1"))

	s.Add(ctx, "f1")
	s.Flush()
	assert.Equal(t, []string{"f1"}, svc.adds)
}
