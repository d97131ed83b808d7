package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Step names are padded to this column so the markers line up.
const stepNameColumn = 45

// StepStatus is the state of one step of a Runner operation.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// done reports whether the step counts towards the bar.
func (s StepStatus) done() bool {
	return s == StepComplete || s == StepSkipped
}

func (s StepStatus) look() (marker string, style lipgloss.Style) {
	switch s {
	case StepComplete:
		return StepMarkerComplete, StepCompleteStyle
	case StepRunning:
		return StepMarkerRunning, StepRunningStyle
	case StepFailed:
		return FailureMarker, ErrorTitleStyle
	case StepSkipped:
		return StepMarkerSkipped, StepPendingStyle
	default:
		return StepMarkerPending, StepPendingStyle
	}
}

// Step is one line of a Progress.
type Step struct {
	Number  int
	Name    string
	Status  StepStatus
	Message string // e.g. "3 channels, 5 videos"
}

// Progress tracks the steps of an operation and renders them under a bar.
type Progress struct {
	Label   string
	Steps   []Step
	Current int     // last step started, 1-based
	Total   int
	Percent float64 // share of steps complete or skipped
	Width   int

	ShowBar   bool
	ShowSteps bool

	bar progress.Model
}

// NewProgress creates a progress display for totalSteps pending steps.
func NewProgress(label string, totalSteps int) *Progress {
	steps := make([]Step, totalSteps)
	for i := range steps {
		steps[i] = Step{Number: i + 1}
	}

	p := &Progress{
		Label:     label,
		Steps:     steps,
		Total:     totalSteps,
		ShowBar:   true,
		ShowSteps: true,
	}
	return p.SetWidth(GetTerminalWidth())
}

// SetWidth resizes the bar to fit width, between 20 and 50 cells.
func (p *Progress) SetWidth(width int) *Progress {
	p.Width = width
	barWidth := min(max(width-20, 20), 50)
	p.bar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth))
	return p
}

func (p *Progress) SetStepNames(names []string) *Progress {
	for i := 0; i < len(names) && i < len(p.Steps); i++ {
		p.Steps[i].Name = names[i]
	}
	return p
}

// UpdateStep records status and message for a 1-based step number. Numbers
// out of range are ignored.
func (p *Progress) UpdateStep(stepNumber int, status StepStatus, message string) {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return
	}
	step := &p.Steps[stepNumber-1]
	step.Status = status
	step.Message = message

	if status == StepRunning {
		p.Current = stepNumber
		return
	}

	finished := 0
	for _, s := range p.Steps {
		if s.Status.done() {
			finished++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(finished) / float64(p.Total)
	}
}

func (p *Progress) StartStep(stepNumber int, message string) {
	p.UpdateStep(stepNumber, StepRunning, message)
}

func (p *Progress) CompleteStep(stepNumber int, message string) {
	p.UpdateStep(stepNumber, StepComplete, message)
}

func (p *Progress) FailStep(stepNumber int, message string) {
	p.UpdateStep(stepNumber, StepFailed, message)
}

// Render returns the label, the bar and the step list.
func (p *Progress) Render() string {
	var sections []string
	if p.Label != "" {
		sections = append(sections, ProgressLabelStyle.Render(p.Label))
	}
	if p.ShowBar {
		bar := fmt.Sprintf("%s  %3.0f%%  [%d/%d]", p.bar.ViewAs(p.Percent), p.Percent*100, p.Current, p.Total)
		sections = append(sections, lipgloss.NewStyle().PaddingLeft(2).Render(bar))
	}
	if p.ShowSteps {
		lines := make([]string, len(p.Steps))
		for i, step := range p.Steps {
			lines[i] = p.renderStepLine(step)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// renderStepLine renders "  [n/total] name   marker  (message)".
func (p *Progress) renderStepLine(step Step) string {
	marker, style := step.Status.look()
	pad := max(stepNameColumn-lipgloss.Width(step.Name), 1)

	line := fmt.Sprintf("  [%d/%d] %s%s%s",
		step.Number, p.Total, style.Render(step.Name), strings.Repeat(" ", pad), style.Render(marker))
	if step.Message != "" {
		line += "  " + StepNoteStyle.Render("("+step.Message+")")
	}
	return line
}

func (p *Progress) String() string {
	return p.Render()
}

// StepCallback reports step progress from inside a Runner operation.
type StepCallback func(stepNumber int, name string, status StepStatus, message string)
