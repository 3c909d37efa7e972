package food

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params CreateFoodParams, image string) (*FoodItem, error) {
	args := m.Called(ctx, params, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FoodItem), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FoodItem), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FoodItem), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateFoodParams) (*FoodItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FoodItem), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListByIDs(ctx context.Context, ids []string) ([]FoodItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FoodItem), args.Error(1)
}

func (m *MockRepository) PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

// MockImageStore is a mock for storage.ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) SaveWithPrefix(prefix, name string, data []byte) (string, error) {
	args := m.Called(prefix, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Remove(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

var imageData = []byte{0x89, 0x50, 0x4E, 0x47}

func TestService_AddFood(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		params := CreateFoodParams{Name: "Spring Rolls", Price: 12.5, Category: "Rolls"}
		store.On("Save", "rolls.png", imageData).Return("123-rolls.png", nil)
		repo.On("Create", ctx, params, "123-rolls.png").
			Return(&FoodItem{ID: "f1", Name: "Spring Rolls"}, nil)

		item, err := svc.AddFood(ctx, params, "rolls.png", imageData)
		require.NoError(t, err)
		assert.Equal(t, "f1", item.ID)
		store.AssertNotCalled(t, "Remove")
	})

	t.Run("ImageRequired", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		_, err := svc.AddFood(ctx, CreateFoodParams{Name: "x", Category: "y"}, "", nil)
		assert.ErrorIs(t, err, ErrImageRequired)
		store.AssertNotCalled(t, "Save")
	})

	t.Run("MissingFieldsBeforeSave", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		_, err := svc.AddFood(ctx, CreateFoodParams{Name: " ", Category: "Rolls"}, "rolls.png", imageData)
		assert.ErrorIs(t, err, ErrMissingFields)
		store.AssertNotCalled(t, "Save")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		_, err := svc.AddFood(ctx, CreateFoodParams{Name: "x", Category: "y", Price: -1}, "rolls.png", imageData)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("RollsBackImageOnInsertFailure", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		params := CreateFoodParams{Name: "Spring Rolls", Price: 12.5, Category: "Rolls"}
		store.On("Save", "rolls.png", imageData).Return("123-rolls.png", nil)
		repo.On("Create", ctx, params, "123-rolls.png").Return(nil, errors.New("db down"))
		store.On("Remove", "123-rolls.png").Return(nil)

		_, err := svc.AddFood(ctx, params, "rolls.png", imageData)
		assert.Error(t, err)
		store.AssertCalled(t, "Remove", "123-rolls.png")
	})
}

func TestService_GetFood(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockImageStore))

		repo.On("GetByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.GetFood(ctx, "ghost")
		assert.ErrorIs(t, err, ErrFoodNotFound)
	})

	t.Run("EmptyID", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockImageStore))
		_, err := svc.GetFood(ctx, "")
		assert.ErrorIs(t, err, ErrFoodNotFound)
	})
}

func TestService_UpdateFood(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsOldImageWithoutUpload", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		newPrice := 15.0
		params := UpdateFoodParams{ID: "f1", Price: &newPrice}
		repo.On("GetByID", ctx, "f1").Return(&FoodItem{ID: "f1", Image: "old.png"}, nil)
		repo.On("Update", ctx, params).Return(&FoodItem{ID: "f1", Price: 15.0, Image: "old.png"}, nil)

		item, err := svc.UpdateFood(ctx, params, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "old.png", item.Image)
		store.AssertNotCalled(t, "Save")
		store.AssertNotCalled(t, "Remove")
	})

	t.Run("ReplacesImageAndRemovesOld", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "f1").Return(&FoodItem{ID: "f1", Image: "old.png"}, nil)
		store.On("Save", "new.png", imageData).Return("456-new.png", nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p UpdateFoodParams) bool {
			return p.Image != nil && *p.Image == "456-new.png"
		})).Return(&FoodItem{ID: "f1", Image: "456-new.png"}, nil)
		store.On("Remove", "old.png").Return(nil)

		item, err := svc.UpdateFood(ctx, UpdateFoodParams{ID: "f1"}, "new.png", imageData)
		require.NoError(t, err)
		assert.Equal(t, "456-new.png", item.Image)
		store.AssertCalled(t, "Remove", "old.png")
	})

	t.Run("RollsBackNewImageOnUpdateFailure", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "f1").Return(&FoodItem{ID: "f1", Image: "old.png"}, nil)
		store.On("Save", "new.png", imageData).Return("456-new.png", nil)
		repo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db down"))
		store.On("Remove", "456-new.png").Return(nil)

		_, err := svc.UpdateFood(ctx, UpdateFoodParams{ID: "f1"}, "new.png", imageData)
		assert.Error(t, err)
		store.AssertCalled(t, "Remove", "456-new.png")
		store.AssertNotCalled(t, "Remove", "old.png")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.UpdateFood(ctx, UpdateFoodParams{ID: "ghost"}, "", nil)
		assert.ErrorIs(t, err, ErrFoodNotFound)
	})
}

func TestService_RemoveFood(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesRowAndImage", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "f1").Return(&FoodItem{ID: "f1", Image: "img.png"}, nil)
		repo.On("Delete", ctx, "f1").Return(nil)
		store.On("Remove", "img.png").Return(nil)

		assert.NoError(t, svc.RemoveFood(ctx, "f1"))
		store.AssertCalled(t, "Remove", "img.png")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "ghost").Return(nil, nil)

		assert.ErrorIs(t, svc.RemoveFood(ctx, "ghost"), ErrFoodNotFound)
		store.AssertNotCalled(t, "Remove")
	})

	t.Run("KeepsFileWhenDeleteFails", func(t *testing.T) {
		repo := new(MockRepository)
		store := new(MockImageStore)
		svc := NewService(repo, store)

		repo.On("GetByID", ctx, "f1").Return(&FoodItem{ID: "f1", Image: "img.png"}, nil)
		repo.On("Delete", ctx, "f1").Return(errors.New("db down"))

		assert.Error(t, svc.RemoveFood(ctx, "f1"))
		store.AssertNotCalled(t, "Remove")
	})
}
