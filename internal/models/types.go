package models

import (
	"time"

	"github.com/povarna/linked-lists/internal/config"
)

type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
	VerdictSkip Verdict = "skip"
)

// End selects which end of a sequence an operation works on
type End int

const (
	Front End = iota
	Back
)

func (e End) String() string {
	if e == Back {
		return "back"
	}
	return "front"
}

// Record is one scenario read from input, or the error that stopped reading
type Record struct {
	Scenario config.Scenario
	Error    error
}

// One replayed step
type StepResult struct {
	Index  int    `json:"index"`
	Op     string `json:"op"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// Outcome of one scenario
type Result struct {
	Name     string        `json:"name"`
	Variant  string        `json:"variant"`
	Verdict  Verdict       `json:"verdict"`
	Steps    []StepResult  `json:"steps"`
	Duration time.Duration `json:"duration_ns"`
}

// Failure returns the first failed step, if any.
func (r Result) Failure() (StepResult, bool) {
	for _, s := range r.Steps {
		if !s.Passed {
			return s, true
		}
	}
	return StepResult{}, false
}

// Final summary of a run
type Report struct {
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Skipped  int      `json:"skipped"`
	Verdict  Verdict  `json:"verdict"`
	Failures []string `json:"failures,omitempty"`
}
