package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	kafkax "github.com/rmarchan/go-shop-api/internal/kafka"
	"github.com/rmarchan/go-shop-api/internal/shop"
)

// Handler wires the shop service to the HTTP surface. Producer and
// Redis are optional: a nil Producer disables event publishing, a nil
// Redis disables the order read cache.
type Handler struct {
	Shop     *shop.Service
	Producer *kafkax.Producer
	Redis    *redis.Client
	Service  string
}

func (h *Handler) Register(r *chi.Mux) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
	})
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}/stock", h.updateStock)
	})
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Get("/", h.listOrders)
		r.Get("/{id}", h.getOrder)
	})
	r.Get("/health", h.health)
}

type healthResp struct {
	Status    string     `json:"status"`
	Service   string     `json:"service"`
	Timestamp time.Time  `json:"timestamp"`
	Stats     shop.Stats `json:"stats"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{
		Status:    "OK",
		Service:   h.Service,
		Timestamp: time.Now().UTC(),
		Stats:     h.Shop.Stats(),
	})
}

// idParam parses the {id} route parameter. Anything that is not a
// positive integer cannot reference a stored entity, so callers treat
// a false return as not-found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
