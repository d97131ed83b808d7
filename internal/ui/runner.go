package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig describes a multi-step command run by a Runner.
type RunnerConfig struct {
	Title     string            // e.g., "Snapshot"
	Command   string            // e.g., "tuibox snapshot"
	Params    map[string]string // shown in the banner
	StepNames []string
	Output    io.Writer // default: os.Stdout
	Width     int       // default: terminal width

	// Troubleshoot supplies tips for the failure box.
	Troubleshoot func(error) []string
}

// Operation is the work a Runner executes. It reports progress through onStep
// and returns details for the success box.
type Operation func(ctx context.Context, onStep StepCallback) (map[string]string, error)

// Runner prints a banner, streams step progress while the operation runs, and
// finishes with a success or failure box.
type Runner struct {
	config   RunnerConfig
	banner   *Banner
	progress *Progress
	output   io.Writer
	width    int
	now      func() time.Time
}

// NewRunner creates a runner for config.
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	width := config.Width
	if width <= 0 {
		width = GetTerminalWidth()
	}

	var progress *Progress
	if len(config.StepNames) > 0 {
		progress = NewProgress("", len(config.StepNames))
		progress.SetWidth(width)
		progress.SetStepNames(config.StepNames)
	}

	return &Runner{
		config:   config,
		banner:   NewBanner(config.Title, config.Command, config.Params).SetWidth(width),
		progress: progress,
		output:   config.Output,
		width:    width,
		now:      time.Now,
	}
}

// Progress exposes step state, mainly for tests.
func (r *Runner) Progress() *Progress {
	return r.progress
}

// Run executes op and prints the result. The operation's error is returned
// unchanged.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	start := r.now()

	_, _ = fmt.Fprintln(r.output, r.banner.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := op(ctx, r.stepCallback())
	took := r.now().Sub(start)

	_, _ = fmt.Fprintln(r.output)
	if err != nil {
		var tips []string
		if r.config.Troubleshoot != nil {
			tips = r.config.Troubleshoot(err)
		}
		result := NewFailureResult(r.config.Title+" failed", err, tips).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
		return err
	}

	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = took.Round(time.Millisecond).String()
	result := NewSuccessResult(r.config.Title+" complete", details).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
	return nil
}

func (r *Runner) stepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if r.progress == nil || stepNumber < 1 || stepNumber > len(r.progress.Steps) {
			return
		}
		if name != "" {
			r.progress.Steps[stepNumber-1].Name = name
		}
		r.progress.UpdateStep(stepNumber, status, message)

		line := r.progress.renderStepLine(r.progress.Steps[stepNumber-1])
		switch status {
		case StepComplete, StepFailed, StepSkipped:
			_, _ = fmt.Fprintln(r.output, line)
		case StepRunning:
			// Overwritten by the completion line.
			_, _ = fmt.Fprint(r.output, line+"\r")
		}
	}
}
