package playlist

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// Events publishes domain events to the realtime broadcast channel.
// Publishing is best-effort: failures are logged and never affect the
// outcome of the operation that raised the event.
type Events struct {
	rdb    *redis.Client
	logger *log.Logger
}

func NewEvents(rdb *redis.Client, logger *log.Logger) *Events {
	if logger == nil {
		logger = log.Default()
	}
	return &Events{rdb: rdb, logger: logger}
}

func (e *Events) Publish(ctx context.Context, eventType string, payload any) {
	if e == nil || e.rdb == nil {
		return
	}

	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		e.logger.Error("marshal event", "type", eventType, "err", err)
		return
	}
	if err := e.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		e.logger.Error("publish event", "type", eventType, "err", err)
	}
}
