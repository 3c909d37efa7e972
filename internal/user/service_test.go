package user

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, password string) (User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "John", "john@example.com", mock.AnythingOfType("string")).
			Return(User{ID: 1, Name: "John", Email: "john@example.com", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, "John", "john@example.com", "longenough")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, _, err := svc.Register(ctx, "John", "not-an-email", "longenough")
		assert.ErrorIs(t, err, ErrInvalidEmail)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("WeakPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, _, err := svc.Register(ctx, "John", "john@example.com", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "John", "john@example.com", mock.AnythingOfType("string")).
			Return(User{}, &pq.Error{Code: pq.ErrorCode(PgUniqueViolation), Constraint: "users_email_key"})

		_, _, err := svc.Register(ctx, "John", "john@example.com", "longenough")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("OtherDBErrorPassesThrough", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		dbErr := errors.New("db down")
		repo.On("Create", ctx, "John", "john@example.com", mock.AnythingOfType("string")).
			Return(User{}, dbErr)

		_, _, err := svc.Register(ctx, "John", "john@example.com", "longenough")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, err := HashPassword("correcthorse")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com", Password: hash, Role: RoleUser}, nil)

		token, u, err := svc.Login(ctx, "john@example.com", "correcthorse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost@example.com", "whatever1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com", Password: hash}, nil)

		_, _, err := svc.Login(ctx, "john@example.com", "wrongpass1")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("StripsPasswordHash", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, uint(1)).
			Return(&User{ID: 1, Name: "John", Password: "hashed"}, nil)

		u, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, u.Password)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, uint(99)).Return(nil, nil)

		_, err := svc.GetProfile(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("NameRequired", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.UpdateProfile(ctx, UpdateProfileParams{UserID: 1, Name: "   "})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "UpdateProfile")
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := UpdateProfileParams{UserID: 1, Name: "Johnny"}
		repo.On("UpdateProfile", ctx, params).
			Return(&User{ID: 1, Name: "Johnny", Password: "hashed"}, nil)

		u, err := svc.UpdateProfile(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "Johnny", u.Name)
		assert.Empty(t, u.Password)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := UpdateProfileParams{UserID: 99, Name: "Ghost"}
		repo.On("UpdateProfile", ctx, params).Return(nil, nil)

		_, err := svc.UpdateProfile(ctx, params)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
