package cart

import (
	"context"

	"feastly-be/internal/food"
)

// Service defines the business logic for the server-side cart store. The
// cart survives across devices; it mirrors whatever the storefront session
// pushes to it.
type Service interface {
	AddItem(ctx context.Context, userID uint, itemID string) error
	RemoveItem(ctx context.Context, userID uint, itemID string) error
	GetCart(ctx context.Context, userID uint) (CartData, error)
	ClearCart(ctx context.Context, userID uint) error
}

type service struct {
	repo     Repository
	foodRepo food.Repository
}

func NewService(repo Repository, foodRepo food.Repository) Service {
	return &service{repo: repo, foodRepo: foodRepo}
}

func (s *service) AddItem(ctx context.Context, userID uint, itemID string) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	if itemID == "" {
		return ErrItemIDRequired
	}

	// Only catalog items can enter a cart; entries for later-deleted items
	// may still linger and are tolerated everywhere downstream.
	item, err := s.foodRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	return s.repo.IncrementItem(ctx, userID, itemID)
}

func (s *service) RemoveItem(ctx context.Context, userID uint, itemID string) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	if itemID == "" {
		return ErrItemIDRequired
	}

	return s.repo.DecrementItem(ctx, userID, itemID)
}

func (s *service) GetCart(ctx context.Context, userID uint) (CartData, error) {
	if userID == 0 {
		return nil, ErrUserNotAuthenticated
	}

	return s.repo.GetCart(ctx, userID)
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}

	return s.repo.ClearCart(ctx, userID)
}
