package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/povarna/linked-lists/cell"
	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/rs/zerolog"
)

// Runner replays scenarios against fresh sequences
type Runner struct {
	factory SequenceFactory
	logger  *zerolog.Logger
}

func NewRunner(factory SequenceFactory, logger *zerolog.Logger) *Runner {
	return &Runner{
		factory: factory,
		logger:  logger,
	}
}

// Run replays every step of sc in order and stops at the first failing step.
func (r *Runner) Run(ctx context.Context, sc config.Scenario) models.Result {
	start := time.Now()
	result := models.Result{
		Name:    sc.Name,
		Variant: sc.Variant,
		Steps:   []models.StepResult{},
	}

	if !sc.IsEnabled() {
		result.Verdict = models.VerdictSkip
		r.logger.Info().Str("scenario", sc.Name).Msg("scenario disabled, skipping")
		return result
	}

	seq, err := r.factory.New(sc.Variant)
	if err != nil {
		result.Verdict = models.VerdictFail
		result.Steps = append(result.Steps, models.StepResult{Index: -1, Reason: err.Error()})
		r.logger.Error().Err(err).Str("scenario", sc.Name).Msg("failed to build sequence")
		return result
	}
	defer seq.Clear()
	defer seq.ReleaseHeld()

	result.Verdict = models.VerdictPass
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			result.Verdict = models.VerdictFail
			result.Steps = append(result.Steps, models.StepResult{Index: i, Op: step.Op, Reason: err.Error()})
			break
		}

		sr := r.exec(seq, i, step)
		result.Steps = append(result.Steps, sr)
		if !sr.Passed {
			result.Verdict = models.VerdictFail
			r.logger.Warn().
				Str("scenario", sc.Name).
				Int("step", i).
				Str("op", step.Op).
				Str("reason", sr.Reason).
				Msg("step failed")
			break
		}
	}

	result.Duration = time.Since(start)
	r.logger.Info().
		Str("scenario", sc.Name).
		Str("variant", sc.Variant).
		Str("verdict", string(result.Verdict)).
		Dur("duration", result.Duration).
		Msg("scenario finished")
	return result
}

// exec runs one step. Access conflicts surface as panics from the list
// packages; they are recovered here only to compare them with the step's
// expectation.
func (r *Runner) exec(seq Sequence, index int, step config.Step) (sr models.StepResult) {
	sr = models.StepResult{Index: index, Op: step.Op}

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		err, isErr := rec.(error)
		switch {
		case isErr && step.Conflict && isConflict(err):
			sr.Passed = true
			sr.Reason = ""
			r.logger.Debug().Err(err).Int("step", index).Msg("expected access conflict")
		case isErr:
			sr.Passed = false
			sr.Reason = fmt.Sprintf("panic: %v", err)
		default:
			sr.Passed = false
			sr.Reason = fmt.Sprintf("panic: %v", rec)
		}
	}()

	err := r.apply(seq, step)
	if err != nil {
		sr.Reason = err.Error()
		return sr
	}
	if step.Conflict {
		sr.Reason = "expected an access conflict, operation succeeded"
		return sr
	}
	sr.Passed = true
	return sr
}

func isConflict(err error) bool {
	return errors.Is(err, cell.ErrBorrowed) || errors.Is(err, cell.ErrMutablyBorrowed)
}

func (r *Runner) apply(seq Sequence, step config.Step) error {
	switch step.Op {
	case config.OpPushFront:
		return seq.Push(models.Front, step.Value)
	case config.OpPushBack:
		return seq.Push(models.Back, step.Value)
	case config.OpPopFront:
		return checkValue(seq.Pop(models.Front))(step)
	case config.OpPopBack:
		return checkValue(seq.Pop(models.Back))(step)
	case config.OpPeekFront:
		return checkValue(seq.Peek(models.Front))(step)
	case config.OpPeekBack:
		return checkValue(seq.Peek(models.Back))(step)
	case config.OpSetFront:
		return checkPresent(seq.Set(models.Front, step.Value))(step)
	case config.OpSetBack:
		return checkPresent(seq.Set(models.Back, step.Value))(step)
	case config.OpHoldFront:
		return seq.Hold(models.Front)
	case config.OpHoldBack:
		return seq.Hold(models.Back)
	case config.OpRelease:
		seq.ReleaseHeld()
		return nil
	case config.OpDrain:
		got := seq.Drain()
		if step.ExpectAll != nil && !slices.Equal(got, step.ExpectAll) {
			return fmt.Errorf("expected %v, got %v", step.ExpectAll, got)
		}
		return nil
	case config.OpLen:
		got := seq.Len()
		if step.Expect != nil && got != *step.Expect {
			return fmt.Errorf("expected len %d, got %d", *step.Expect, got)
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func checkValue(v int, ok bool, err error) func(config.Step) error {
	return func(step config.Step) error {
		if err != nil {
			return err
		}
		switch {
		case step.Absent && ok:
			return fmt.Errorf("expected absent, got %d", v)
		case step.Expect != nil && !ok:
			return fmt.Errorf("expected %d, got absent", *step.Expect)
		case step.Expect != nil && v != *step.Expect:
			return fmt.Errorf("expected %d, got %d", *step.Expect, v)
		}
		return nil
	}
}

func checkPresent(ok bool, err error) func(config.Step) error {
	return func(step config.Step) error {
		if err != nil {
			return err
		}
		if step.Absent && ok {
			return errors.New("expected no element to set")
		}
		if !step.Absent && !ok {
			return errors.New("no element to set")
		}
		return nil
	}
}
