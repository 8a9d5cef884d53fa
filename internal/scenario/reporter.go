package scenario

import (
	"fmt"

	"github.com/povarna/linked-lists/internal/models"
	"github.com/rs/zerolog"
)

// Reporter folds scenario results into a run report
type Reporter struct {
	report models.Report
	logger *zerolog.Logger
}

func NewReporter(logger *zerolog.Logger) *Reporter {
	return &Reporter{
		report: models.Report{Verdict: models.VerdictPass},
		logger: logger,
	}
}

func (r *Reporter) Add(result models.Result) {
	r.report.Total++

	switch result.Verdict {
	case models.VerdictPass:
		r.report.Passed++
	case models.VerdictSkip:
		r.report.Skipped++
	default:
		r.report.Failed++
		r.report.Verdict = models.VerdictFail
		r.report.Failures = append(r.report.Failures, describe(result))
	}
}

// AddError counts a scenario that could not be read as a failure.
func (r *Reporter) AddError(err error) {
	r.report.Total++
	r.report.Failed++
	r.report.Verdict = models.VerdictFail
	r.report.Failures = append(r.report.Failures, err.Error())
}

func (r *Reporter) Report() models.Report {
	if r.report.Total == 0 {
		r.report.Verdict = models.VerdictSkip
	}

	r.logger.
		Info().
		Int("total", r.report.Total).
		Int("passed", r.report.Passed).
		Int("failed", r.report.Failed).
		Int("skipped", r.report.Skipped).
		Str("verdict", string(r.report.Verdict)).
		Msg("report complete")
	return r.report
}

func describe(result models.Result) string {
	step, ok := result.Failure()
	if !ok {
		return fmt.Sprintf("%s [%s]", result.Name, result.Variant)
	}
	if step.Index < 0 {
		return fmt.Sprintf("%s [%s]: %s", result.Name, result.Variant, step.Reason)
	}
	return fmt.Sprintf("%s [%s] step %d (%s): %s", result.Name, result.Variant, step.Index, step.Op, step.Reason)
}
