package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/povarna/linked-lists/internal/scenario"
	"github.com/povarna/linked-lists/internal/setup"
	"github.com/povarna/linked-lists/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()

	input := flag.String("input", cfg.ScenariosPath, "Scenario file path, '-' for stdin")
	variant := flag.String("variant", "", "Run every scenario against this variant (deque, stack, queue, persistent)")
	failFast := flag.Bool("fail-fast", cfg.FailFast, "Stop at the first failing scenario")
	asJSON := flag.Bool("json", false, "Print the report as JSON to stdout")
	fromStream := flag.Bool("stream", false, "Consume scenarios from the Redis stream until interrupted")
	flag.Parse()

	cfg.ScenariosPath = *input
	cfg.Variant = *variant
	cfg.FailFast = *failFast

	log.Logger = logger.NewConsole(cfg.LogLevel)

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	var source scenario.Source
	if *fromStream {
		consumer, closeFn, err := setup.NewStreamSource(ctx, cfg, deps.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create stream consumer")
		}
		defer closeFn()
		source = consumer
	} else {
		var inputFile io.Reader
		if cfg.ScenariosPath == "-" {
			inputFile = os.Stdin
			log.Info().Msg("Reading from stdin")
		} else {
			f, err := os.Open(cfg.ScenariosPath)
			if err != nil {
				log.Fatal().Err(err).Str("file", cfg.ScenariosPath).Msg("Failed to open input file")
			}
			defer f.Close()
			inputFile = f
			log.Info().Str("file", cfg.ScenariosPath).Msg("Reading input file")
		}
		source = scenario.NewReader(inputFile, cfg.Variant, deps.Logger)
	}

	report, err := deps.Pipeline.Process(ctx, source)
	if *fromStream && errors.Is(err, context.Canceled) {
		// an interrupt is the normal way to stop consuming
		err = nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Run interrupted")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Error().Err(err).Msg("Failed to write report")
		}
	}

	for _, failure := range report.Failures {
		log.Error().Str("failure", failure).Msg("Scenario failed")
	}

	log.Info().
		Int("total", report.Total).
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Dur("duration", time.Since(startTime)).
		Msg("Run complete")

	if err != nil || report.Verdict == models.VerdictFail {
		os.Exit(1)
	}
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current scenario...")
		cancel()
	}()

	return ctx, cancel
}
