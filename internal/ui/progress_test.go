package ui

import (
	"strings"
	"testing"
)

func TestProgressUpdateStep(t *testing.T) {
	p := NewProgress("Writing snapshot...", 4).SetStepNames([]string{"Connect", "Fetch", "Write", "Verify"})

	p.StartStep(1, "")
	if p.Current != 1 {
		t.Errorf("Current = %d, want 1", p.Current)
	}
	p.CompleteStep(1, "")
	p.UpdateStep(2, StepSkipped, "cached")
	p.FailStep(3, "disk full")

	if p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}
	if p.Steps[2].Message != "disk full" {
		t.Errorf("Message = %q, want %q", p.Steps[2].Message, "disk full")
	}

	// Out-of-range updates are ignored.
	p.UpdateStep(0, StepComplete, "")
	p.UpdateStep(9, StepComplete, "")
	if p.Percent != 0.5 {
		t.Errorf("Percent changed by out-of-range update: %v", p.Percent)
	}
}

func TestProgressRender(t *testing.T) {
	p := NewProgress("Writing snapshot...", 2).SetStepNames([]string{"Connect", "Fetch"})
	p.CompleteStep(1, "120ms")
	p.StartStep(2, "")

	out := p.Render()
	for _, want := range []string{"Writing snapshot...", "[1/2] Connect", "[2/2] Fetch", "(120ms)", StepMarkerComplete, StepMarkerRunning} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}
