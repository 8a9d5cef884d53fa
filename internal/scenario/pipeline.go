package scenario

import (
	"context"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

// ScenarioRunner replays a single scenario
type ScenarioRunner interface {
	Run(ctx context.Context, sc config.Scenario) models.Result
}

// Source produces scenarios to replay
type Source interface {
	ReadAll(ctx context.Context) <-chan models.Record
}

type Pipeline struct {
	runner   ScenarioRunner
	failFast bool
	logger   *zerolog.Logger
}

func NewPipeline(runner ScenarioRunner, failFast bool, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		runner:   runner,
		failFast: failFast,
		logger:   logger,
	}
}

// Process replays every scenario from src in order. With fail-fast set it
// stops reading after the first failure. The returned error is the context
// error if parent was cancelled while processing.
func (p *Pipeline) Process(parent context.Context, src Source) (models.Report, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	reporter := NewReporter(p.logger)
	records := src.ReadAll(ctx)

	for record := range records {
		if record.Error != nil {
			reporter.AddError(record.Error)
			if p.failFast {
				break
			}
			continue
		}

		result := p.runner.Run(ctx, record.Scenario)
		reporter.Add(result)
		if p.failFast && result.Verdict == models.VerdictFail {
			p.logger.Warn().Str("scenario", result.Name).Msg("stopping on first failure")
			break
		}
	}
	cancel()
	// let the source goroutine observe cancellation and exit
	for range records {
	}

	return reporter.Report(), parent.Err()
}
