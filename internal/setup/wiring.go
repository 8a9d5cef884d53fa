package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/scenario"
	"github.com/povarna/linked-lists/internal/stream"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	ScenariosPath string
	// Variant, when set, replaces the variant of every scenario.
	Variant  string
	FailFast bool
	Stream   *stream.Config
}

type Dependencies struct {
	Runner   *scenario.Runner
	Pipeline *scenario.Pipeline
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ScenariosPath: getEnv("SCENARIOS_CONFIG_PATH", config.DefaultPath),
		FailFast:      getEnvBool("FAIL_FAST", false),
		Stream: stream.NewConfig(
			getEnv("REDIS_ADDR", "localhost:6379"),
			getEnv("REDIS_PASSWORD", ""),
			getEnv("STREAM_NAME", "list-scenarios"),
			getEnv("STREAM_GROUP", "listrun"),
			getEnv("HOSTNAME", "listrun"),
		),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if cfg.Variant != "" && !config.IsVariant(cfg.Variant) {
		return nil, fmt.Errorf("unknown variant %q, expected one of %v", cfg.Variant, config.Variants)
	}

	runner := scenario.NewRunner(scenario.NewVariants(), logger)
	pipeline := scenario.NewPipeline(runner, cfg.FailFast, logger)

	return &Dependencies{
		Runner:   runner,
		Pipeline: pipeline,
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
