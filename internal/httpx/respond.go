package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmarchan/go-shop-api/internal/shop"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the shop error taxonomy onto status codes and the
// {error, [available], [requested]} body shape.
func writeError(w http.ResponseWriter, err error) {
	var ve *shop.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Reason})
		return
	}
	var ise *shop.InsufficientStockError
	if errors.As(err, &ise) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     "insufficient stock",
			"available": ise.Available,
			"requested": ise.Requested,
		})
		return
	}
	var nfe *shop.NotFoundError
	if errors.As(err, &nfe) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": nfe.Error()})
		return
	}
	var de *shop.DuplicateError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusConflict, map[string]any{"error": de.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
}
