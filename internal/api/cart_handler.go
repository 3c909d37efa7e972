package api

import (
	"net/http"

	"feastly-be/internal/cart"
	"feastly-be/internal/middleware"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type cartItemRequest struct {
	ItemID string `json:"itemId"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.AddItem(r.Context(), userID, req.ItemID); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"message": "Added To Cart"})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RemoveItem(r.Context(), userID, req.ItemID); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"message": "Removed From Cart"})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	data, err := h.svc.GetCart(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"cartData": data})
}
