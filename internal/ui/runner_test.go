package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunnerSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerConfig{
		Title:     "Snapshot",
		Command:   "tuibox snapshot",
		Params:    map[string]string{"View": "youtube_data.latest_20"},
		StepNames: []string{"Connect", "Fetch"},
		Output:    &buf,
		Width:     80,
	})

	err := r.Run(context.Background(), func(ctx context.Context, onStep StepCallback) (map[string]string, error) {
		onStep(1, "", StepRunning, "")
		onStep(1, "", StepComplete, "")
		onStep(2, "Fetch channels", StepRunning, "")
		onStep(2, "", StepComplete, "3 channels")
		onStep(7, "", StepComplete, "") // ignored
		return map[string]string{"Channels": "3"}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"SNAPSHOT", "tuibox snapshot", "View:", "[1/2] Connect", "[2/2] Fetch channels", "(3 channels)", "Snapshot complete", "Duration:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if r.Progress().Percent != 1 {
		t.Errorf("Percent = %v, want 1", r.Progress().Percent)
	}
}

func TestRunnerFailure(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	r := NewRunner(RunnerConfig{
		Title:        "Snapshot",
		Command:      "tuibox snapshot",
		StepNames:    []string{"Connect"},
		Output:       &buf,
		Width:        80,
		Troubleshoot: func(error) []string { return []string{"Check MONGO_URI"} },
	})

	err := r.Run(context.Background(), func(ctx context.Context, onStep StepCallback) (map[string]string, error) {
		onStep(1, "", StepFailed, "")
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}

	out := buf.String()
	for _, want := range []string{"Snapshot failed", "Error: boom", "Check MONGO_URI"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
