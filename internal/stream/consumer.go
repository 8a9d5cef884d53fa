package stream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Client is the part of *redis.Client the stream source and producer use
type Client interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Consumer reads scenario documents from a Redis stream through a consumer
// group. Each entry carries one YAML document in its payload field.
type Consumer struct {
	client       Client
	stream       string
	groupID      string
	consumerName string
	variant      string
	block        time.Duration
	retryWait    time.Duration
	logger       *zerolog.Logger
}

func NewConsumer(client Client, cfg *Config, variant string, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		variant:      variant,
		block:        2 * time.Second,
		retryWait:    time.Second,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", c.groupID, err)
	}
	return nil
}

// ReadAll streams scenarios until ctx is cancelled. An entry is acknowledged
// once all of its scenarios have been handed over.
func (c *Consumer) ReadAll(ctx context.Context) <-chan models.Record {
	ch := make(chan models.Record)

	go func() {
		defer close(ch)

		c.logger.Info().
			Str("stream", c.stream).
			Str("group", c.groupID).
			Str("consumer", c.consumerName).
			Msg("Consumer started")

		for ctx.Err() == nil {
			msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    c.groupID,
				Consumer: c.consumerName,
				Streams:  []string{c.stream, ">"},
				Count:    1,
				Block:    c.block,
			}).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				c.logger.Error().Err(err).Dur("retry_in", c.retryWait).Msg("Failed to read from stream")
				select {
				case <-time.After(c.retryWait):
				case <-ctx.Done():
				}
				continue
			}

			for _, s := range msgs {
				for _, msg := range s.Messages {
					if !c.process(ctx, ch, msg) {
						return
					}
				}
			}
		}
	}()

	return ch
}

// process emits the records of one entry. It reports false if ctx was
// cancelled first, leaving the entry pending for redelivery.
func (c *Consumer) process(ctx context.Context, ch chan<- models.Record, msg redis.XMessage) bool {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	for _, rec := range c.decode(msg) {
		if ctx.Err() != nil {
			return false
		}
		select {
		case ch <- rec:
		case <-ctx.Done():
			return false
		}
	}

	c.ack(ctx, msg.ID)
	return true
}

func (c *Consumer) decode(msg redis.XMessage) []models.Record {
	payload, ok := msg.Values[PayloadField].(string)
	if !ok {
		return []models.Record{{Error: fmt.Errorf("message %s: missing %s field", msg.ID, PayloadField)}}
	}

	file, err := config.Parse([]byte(payload))
	if err != nil {
		return []models.Record{{Error: fmt.Errorf("message %s: %w", msg.ID, err)}}
	}

	records := make([]models.Record, 0, len(file.Scenarios))
	for _, sc := range file.Scenarios {
		if c.variant != "" {
			sc.Variant = c.variant
		}
		records = append(records, models.Record{Scenario: sc})
	}
	return records
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
