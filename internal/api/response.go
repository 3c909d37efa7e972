package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"feastly-be/internal/cart"
	"feastly-be/internal/food"
	"feastly-be/internal/logger"
	"feastly-be/internal/order"
	"feastly-be/internal/storage"
	"feastly-be/internal/user"

	"go.uber.org/zap"
)

const msgNotAuthorized = "Not authorized. Login again."

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondOK merges extra keys into the success envelope, so endpoints that
// answer with top-level keys like token or cartData stay on the wire shape
// their clients already parse.
func respondOK(w http.ResponseWriter, extra map[string]interface{}) {
	payload := map[string]interface{}{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	writeJSON(w, http.StatusOK, payload)
}

func respondFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

var validationErrs = []error{
	user.ErrInvalidEmail,
	user.ErrWeakPassword,
	user.ErrEmailExists,
	user.ErrBadCredentials,
	user.ErrNameRequired,
	food.ErrMissingFields,
	food.ErrInvalidPrice,
	food.ErrImageRequired,
	storage.ErrNotAnImage,
	storage.ErrTooLarge,
	storage.ErrEmptyUpload,
	cart.ErrItemIDRequired,
	cart.ErrItemNotFound,
	order.ErrCartEmpty,
	order.ErrInvalidAddress,
	order.ErrInvalidStatus,
	order.ErrBackwardTransition,
}

var notFoundErrs = []error{
	food.ErrFoodNotFound,
	order.ErrOrderNotFound,
	user.ErrUserNotFound,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps service errors onto the wire taxonomy: validation 400,
// missing entity 404, auth failures a 200 success:false envelope, anything
// else a logged 500 with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrUnauthorized) || errors.Is(err, cart.ErrUserNotAuthenticated):
		respondFail(w, http.StatusOK, msgNotAuthorized)
	case matchesAny(err, validationErrs):
		respondFail(w, http.StatusBadRequest, err.Error())
	case matchesAny(err, notFoundErrs):
		respondFail(w, http.StatusNotFound, err.Error())
	default:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		respondFail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
