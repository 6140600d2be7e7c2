package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/rmarchan/go-shop-api/internal/kafka"
	"github.com/rmarchan/go-shop-api/internal/redisx"
	"github.com/rmarchan/go-shop-api/internal/shop"
)

type createOrderReq struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}

	order, err := h.Shop.PlaceOrder(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Orders never change after placement, so the body can be cached
	// as-is for fast GETs.
	if h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyOrderCache, order.ID)
		_ = h.Redis.Set(ctx, key, kafkax.MustMarshal(order), redisx.TTLOrderCache).Err()
	}

	h.publishOrderCreated(order, r.Header.Get("X-Request-Id"))

	writeJSON(w, http.StatusCreated, order)
}

// publishOrderCreated hands the event to the async producer; it never
// blocks or fails the request. The in-memory store stays the source of
// truth regardless of broker availability.
func (h *Handler) publishOrderCreated(order shop.Order, traceID string) {
	if h.Producer == nil {
		return
	}
	ev := shop.Envelope{
		EventID:       uuid.NewString(),
		EventType:     shop.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       traceID,
		CorrelationID: strconv.FormatInt(order.ID, 10),
		Payload: kafkax.MustMarshal(shop.OrderCreatedPayload{
			OrderID:     order.ID,
			UserID:      order.UserID,
			UserName:    order.UserName,
			ProductID:   order.ProductID,
			ProductName: order.ProductName,
			Quantity:    order.Quantity,
			UnitPrice:   order.UnitPrice,
			Total:       order.Total,
		}),
	}
	h.Producer.Publish(shop.PartitionKey(order.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(shop.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Shop.Orders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, &shop.NotFoundError{Entity: "order"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var key string
	if h.Redis != nil {
		key = fmt.Sprintf(redisx.KeyOrderCache, id)
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	order, err := h.Shop.Order(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, kafkax.MustMarshal(order), redisx.TTLOrderCache).Err()
	}
	writeJSON(w, http.StatusOK, order)
}
