package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/linked-lists/internal/setup"
	"github.com/povarna/linked-lists/internal/setup/logger"
	"github.com/povarna/linked-lists/internal/stream"
	"github.com/rs/zerolog/log"
)

func main() {
	input := flag.String("input", "", "Scenario file to publish")
	streamName := flag.String("stream", "", "Stream name (defaults to STREAM_NAME)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -input <scenarios.yaml>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *streamName); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(input, streamName string) error {
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	log.Logger = logger.NewConsole(cfg.LogLevel)
	if streamName == "" {
		streamName = cfg.Stream.Stream
	}

	payload, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	ctx := context.Background()
	client, err := stream.ConnectRedis(ctx, cfg.Stream.RedisAddr, cfg.Stream.RedisPassword, 3, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := stream.Publish(ctx, client, streamName, payload)
	if err != nil {
		return err
	}

	log.Info().Str("stream", streamName).Str("id", id).Str("file", input).Msg("Published successfully!")
	return nil
}
