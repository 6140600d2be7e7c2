package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rmarchan/go-shop-api/internal/shop"
)

// Price and Stock are pointers so a missing field is distinguishable
// from an explicit zero; zero values are legal for both.
type createProductReq struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type updateStockReq struct {
	Quantity *int `json:"quantity"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}
	if req.Name == "" || req.Price == nil || req.Stock == nil {
		writeError(w, &shop.ValidationError{Reason: "name, price and stock are required"})
		return
	}
	p, err := h.Shop.AddProduct(req.Name, *req.Price, *req.Stock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Shop.Products())
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, &shop.NotFoundError{Entity: "product"})
		return
	}
	p, err := h.Shop.Product(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, &shop.NotFoundError{Entity: "product"})
		return
	}
	var req updateStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}
	if req.Quantity == nil {
		writeError(w, &shop.ValidationError{Reason: "quantity is required"})
		return
	}
	p, err := h.Shop.SetProductStock(id, *req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
