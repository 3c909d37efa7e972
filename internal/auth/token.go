package auth

import (
	"net/http"
	"strings"
)

// ExtractAccessToken reads the session token from the request. Both header
// conventions are honored: the legacy storefront sends a raw "token" header,
// newer clients send "Authorization: Bearer <token>".
func ExtractAccessToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if raw := r.Header.Get("token"); raw != "" {
		return raw
	}

	return ""
}
