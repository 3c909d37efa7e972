package api

import (
	"errors"
	"net/http"
	"strconv"

	"feastly-be/internal/logger"
	"feastly-be/internal/middleware"
	"feastly-be/internal/storage"
	"feastly-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc   user.Service
	store storage.ImageStore
}

func NewUserHandler(svc user.Service, store storage.ImageStore) *UserHandler {
	return &UserHandler{svc: svc, store: store}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, _, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"token": token})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, _, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email is a credential failure here, not a missing
		// resource.
		if errors.Is(err, user.ErrUserNotFound) {
			respondFail(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"token": token})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseUint(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	callerID, _ := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.RoleFromContext(r.Context()) == string(user.RoleAdmin)
	if uint(targetID) != callerID && !isAdmin {
		respondFail(w, http.StatusOK, msgNotAuthorized)
		return
	}

	u, err := h.svc.GetProfile(r.Context(), uint(targetID))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"user": u})
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.UserIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	params := user.UpdateProfileParams{
		UserID: callerID,
		Name:   r.FormValue("name"),
	}

	// The storefront posts the file as profileImage; the catalog-style image
	// field is honored too, same as the dual auth-header convention.
	imageName, imageData, err := readUpload(r, "profileImage")
	if err == nil && len(imageData) == 0 {
		imageName, imageData, err = readUpload(r, "image")
	}
	if err != nil {
		respondFail(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	var savedImage string
	if len(imageData) > 0 {
		savedImage, err = h.store.SaveWithPrefix("profiles", imageName, imageData)
		if err != nil {
			respondError(w, r, err)
			return
		}
		params.ProfileImage = &savedImage
	}

	u, err := h.svc.UpdateProfile(r.Context(), params)
	if err != nil {
		// The stored file has no row pointing at it; take it back out.
		if savedImage != "" {
			if rmErr := h.store.Remove(savedImage); rmErr != nil {
				logger.FromCtx(r.Context()).Warn("failed to roll back profile image",
					zap.String("file", savedImage), zap.Error(rmErr))
			}
		}
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"user": u})
}
