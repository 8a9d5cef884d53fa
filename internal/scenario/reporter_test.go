package scenario_test

import (
	"errors"
	"testing"

	"github.com/povarna/linked-lists/internal/models"
	"github.com/povarna/linked-lists/internal/scenario"
)

func TestReporter_AllPass(t *testing.T) {
	reporter := scenario.NewReporter(newTestLogger())
	reporter.Add(models.Result{Name: "a", Verdict: models.VerdictPass})
	reporter.Add(models.Result{Name: "b", Verdict: models.VerdictSkip})

	report := reporter.Report()
	if report.Verdict != models.VerdictPass {
		t.Errorf("expected pass, got %s", report.Verdict)
	}
	if report.Total != 2 || report.Passed != 1 || report.Skipped != 1 {
		t.Errorf("unexpected counts: %+v", report)
	}
	if len(report.Failures) != 0 {
		t.Errorf("expected no failures, got %v", report.Failures)
	}
}

func TestReporter_Failures(t *testing.T) {
	reporter := scenario.NewReporter(newTestLogger())
	reporter.Add(models.Result{
		Name:    "bad-variant",
		Variant: "vector",
		Verdict: models.VerdictFail,
		Steps:   []models.StepResult{{Index: -1, Reason: `unknown variant "vector"`}},
	})
	reporter.AddError(errors.New("document 1: failed to parse YAML"))

	report := reporter.Report()
	if report.Verdict != models.VerdictFail {
		t.Errorf("expected fail, got %s", report.Verdict)
	}
	if report.Failed != 2 {
		t.Errorf("expected 2 failures, got %d", report.Failed)
	}
	if report.Failures[0] != `bad-variant [vector]: unknown variant "vector"` {
		t.Errorf("unexpected failure line: %q", report.Failures[0])
	}
}
