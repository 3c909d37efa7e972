package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"feastly-be/internal/food"
)

const maxUploadMemory = 8 << 20

type FoodHandler struct {
	svc food.Service
}

func NewFoodHandler(svc food.Service) *FoodHandler {
	return &FoodHandler{svc: svc}
}

// readUpload pulls the named multipart file into memory. A missing file is
// not an error here; whether an image is mandatory is the service's call.
func readUpload(r *http.Request, field string) (string, []byte, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadMemory))
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func (h *FoodHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		respondFail(w, http.StatusBadRequest, food.ErrInvalidPrice.Error())
		return
	}

	stock := 0
	if raw := r.FormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			respondFail(w, http.StatusBadRequest, "invalid stock")
			return
		}
	}

	imageName, imageData, err := readUpload(r, "image")
	if err != nil {
		respondFail(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	item, err := h.svc.AddFood(r.Context(), food.CreateFoodParams{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Stock:       stock,
	}, imageName, imageData)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{
		"message": "Food Added",
		"data":    item,
	})
}

func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListFoods(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{
		"data":  items,
		"count": len(items),
	})
}

func (h *FoodHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RemoveFood(r.Context(), req.ID); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{"message": "Food Removed"})
}

func formValuePtr(form *multipart.Form, field string) *string {
	values, ok := form.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	form := r.MultipartForm
	params := food.UpdateFoodParams{
		ID:          r.FormValue("id"),
		Name:        formValuePtr(form, "name"),
		Description: formValuePtr(form, "description"),
		Category:    formValuePtr(form, "category"),
	}

	if raw := formValuePtr(form, "price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			respondFail(w, http.StatusBadRequest, food.ErrInvalidPrice.Error())
			return
		}
		params.Price = &price
	}
	if raw := formValuePtr(form, "stock"); raw != nil {
		stock, err := strconv.Atoi(*raw)
		if err != nil || stock < 0 {
			respondFail(w, http.StatusBadRequest, "invalid stock")
			return
		}
		params.Stock = &stock
	}

	imageName, imageData, err := readUpload(r, "image")
	if err != nil {
		respondFail(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	item, err := h.svc.UpdateFood(r.Context(), params, imageName, imageData)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, map[string]interface{}{
		"message": "Food Updated",
		"data":    item,
	})
}
