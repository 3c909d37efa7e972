package food

import (
	"context"
	"strings"

	"feastly-be/internal/logger"
	"feastly-be/internal/storage"

	"go.uber.org/zap"
)

// Service defines the business logic for the food catalog. It owns the image
// lifecycle: a stored image is removed again whenever the accompanying
// database write fails, so a failed add or update never leaves orphans.
type Service interface {
	AddFood(ctx context.Context, params CreateFoodParams, imageName string, imageData []byte) (*FoodItem, error)
	ListFoods(ctx context.Context) ([]FoodItem, error)
	GetFood(ctx context.Context, id string) (*FoodItem, error)
	UpdateFood(ctx context.Context, params UpdateFoodParams, imageName string, imageData []byte) (*FoodItem, error)
	RemoveFood(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	store storage.ImageStore
}

func NewService(repo Repository, store storage.ImageStore) Service {
	return &service{repo: repo, store: store}
}

func (s *service) AddFood(ctx context.Context, params CreateFoodParams, imageName string, imageData []byte) (*FoodItem, error) {
	log := logger.FromCtx(ctx)

	if len(imageData) == 0 {
		return nil, ErrImageRequired
	}

	params.Name = strings.TrimSpace(params.Name)
	params.Category = strings.TrimSpace(params.Category)
	params.Description = strings.TrimSpace(params.Description)

	if params.Name == "" || params.Category == "" {
		return nil, ErrMissingFields
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	filename, err := s.store.Save(imageName, imageData)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, params, filename)
	if err != nil {
		// Roll the file back so a failed insert leaves no orphan on disk.
		if rmErr := s.store.Remove(filename); rmErr != nil {
			log.Warn("failed to roll back image", zap.String("file", filename), zap.Error(rmErr))
		}
		return nil, err
	}

	return item, nil
}

func (s *service) ListFoods(ctx context.Context) ([]FoodItem, error) {
	return s.repo.List(ctx)
}

func (s *service) GetFood(ctx context.Context, id string) (*FoodItem, error) {
	if id == "" {
		return nil, ErrFoodNotFound
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFoodNotFound
	}

	return item, nil
}

func (s *service) UpdateFood(ctx context.Context, params UpdateFoodParams, imageName string, imageData []byte) (*FoodItem, error) {
	log := logger.FromCtx(ctx)

	existing, err := s.repo.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrFoodNotFound
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, ErrMissingFields
	}
	if params.Category != nil && strings.TrimSpace(*params.Category) == "" {
		return nil, ErrMissingFields
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	var newImage string
	if len(imageData) > 0 {
		newImage, err = s.store.Save(imageName, imageData)
		if err != nil {
			return nil, err
		}
		params.Image = &newImage
	}

	item, err := s.repo.Update(ctx, params)
	if err != nil || item == nil {
		if newImage != "" {
			if rmErr := s.store.Remove(newImage); rmErr != nil {
				log.Warn("failed to roll back image", zap.String("file", newImage), zap.Error(rmErr))
			}
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrFoodNotFound
	}

	// The old image is unreferenced once the row points at the new one.
	if newImage != "" && existing.Image != "" && existing.Image != newImage {
		if rmErr := s.store.Remove(existing.Image); rmErr != nil {
			log.Warn("failed to remove replaced image", zap.String("file", existing.Image), zap.Error(rmErr))
		}
	}

	return item, nil
}

func (s *service) RemoveFood(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFoodNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != "" {
		if rmErr := s.store.Remove(existing.Image); rmErr != nil {
			log.Warn("failed to remove image of deleted food",
				zap.String("file", existing.Image), zap.Error(rmErr))
		}
	}

	return nil
}
