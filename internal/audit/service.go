package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/rmarchan/go-shop-api/internal/kafka"
	"github.com/rmarchan/go-shop-api/internal/redisx"
	"github.com/rmarchan/go-shop-api/internal/shop"
)

// Service tails the order.created topic and writes one audit line per
// order. Redis is optional; when present it dedups redelivered events
// by event id.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderCreated is installed as the consumer handler.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != shop.EventOrderCreated {
		return nil // ignore
	}

	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
		if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	p, err := kafkax.UnwrapPayload[shop.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	log.Printf("order %d: %s bought %dx %s for %.2f (trace=%s)",
		p.OrderID, p.UserName, p.Quantity, p.ProductName, p.Total, env.TraceID)
	return nil
}
