package stream

import (
	"context"
	"fmt"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/redis/go-redis/v9"
)

// Publish validates a scenario document and appends it to stream.
func Publish(ctx context.Context, client Client, stream string, payload []byte) (string, error) {
	if _, err := config.Parse(payload); err != nil {
		return "", err
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{PayloadField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", stream, err)
	}
	return id, nil
}
