package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "secretpass", hash)

	assert.True(t, CheckPasswordHash("secretpass", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateJWT(42, string(RoleUser))
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, string(RoleUser), claims.Role)
	})

	t.Run("ThreeDayExpiry", func(t *testing.T) {
		token, err := GenerateJWT(1, string(RoleUser))
		require.NoError(t, err)

		claims, err := ParseJWT(token)
		require.NoError(t, err)

		remaining := time.Until(claims.ExpiresAt.Time)
		assert.InDelta(t, (72 * time.Hour).Seconds(), remaining.Seconds(), 60)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, err := GenerateJWT(1, string(RoleUser))
		require.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateJWT(1, string(RoleUser))
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "other-secret")
		_, err = ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		claims := CustomClaims{
			UserID: 1,
			Role:   string(RoleUser),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := tok.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseJWT(signed)
		assert.Error(t, err)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := GenerateJWT(1, string(RoleUser))
		assert.Error(t, err)
	})
}
