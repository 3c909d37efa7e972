package api

import (
	"net/http"

	"feastly-be/internal/middleware"
	"feastly-be/internal/order"
	"feastly-be/internal/user"
)

type OrderHandler struct {
	svc     order.Service
	userSvc user.Service
}

func NewOrderHandler(svc order.Service, userSvc user.Service) *OrderHandler {
	return &OrderHandler{svc: svc, userSvc: userSvc}
}

// Place creates an order from the caller's server-side cart. Client-sent
// items and amounts are ignored; the snapshot and total come from the cart
// and catalog on this side of the wire.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req struct {
		Address order.Address `json:"address"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var email string
	if u, err := h.userSvc.GetProfile(r.Context(), userID); err == nil {
		email = u.Email
	}

	placed, err := h.svc.PlaceOrder(r.Context(), userID, email, req.Address)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"session_url": placed.SessionURL})
}

func (h *OrderHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	orders, err := h.svc.UserOrders(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"data": orders})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.AllOrders(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"data": orders})
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID uint   `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), req.OrderID, req.Status); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"message": "Status Updated"})
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID uint `json:"orderId"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), req.OrderID); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"message": "Order Deleted"})
}
