package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("BearerHeader", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer abc123")
		assert.Equal(t, "abc123", ExtractAccessToken(r))
	})

	t.Run("RawTokenHeader", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("token", "abc123")
		assert.Equal(t, "abc123", ExtractAccessToken(r))
	})

	t.Run("BearerWinsOverRaw", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer from-bearer")
		r.Header.Set("token", "from-raw")
		assert.Equal(t, "from-bearer", ExtractAccessToken(r))
	})

	t.Run("NonBearerAuthorizationIgnored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic abc123")
		assert.Equal(t, "", ExtractAccessToken(r))
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, "", ExtractAccessToken(r))
	})
}
