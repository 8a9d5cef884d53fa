package setup

import (
	"context"
	"fmt"

	"github.com/povarna/linked-lists/internal/stream"
	"github.com/rs/zerolog"
)

// NewStreamSource connects to Redis and prepares a consumer group reader.
// The returned close func releases the connection.
func NewStreamSource(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*stream.Consumer, func() error, error) {
	client, err := stream.ConnectRedis(ctx, cfg.Stream.RedisAddr, cfg.Stream.RedisPassword, 5, logger)
	if err != nil {
		return nil, nil, err
	}

	consumer := stream.NewConsumer(client, cfg.Stream, cfg.Variant, logger)
	if err := consumer.Setup(ctx); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to setup consumer: %w", err)
	}

	return consumer, client.Close, nil
}
