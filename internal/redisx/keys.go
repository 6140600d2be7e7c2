package redisx

import "time"

const (
	// Cached order body: order:{order_id} -> full order JSON.
	// Orders are immutable, so a cached body can never go stale.
	KeyOrderCache = "order:%d"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLOrderCache = 1 * time.Hour
	TTLDedup      = 48 * time.Hour
)
