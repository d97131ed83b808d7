package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used by the non-interactive commands. Demos use a Theme instead.
var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100

	// Size assumed until a model sees its first WindowSizeMsg.
	DefaultWidth  = 80
	DefaultHeight = 24
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	BannerTitleStyle      = fg(TextColor).Bold(true).PaddingLeft(2)
	BannerCommandStyle    = fg(MutedColor).PaddingLeft(2)
	BannerParamKeyStyle   = fg(MutedColor).PaddingLeft(2)
	BannerParamValueStyle = fg(TextColor)

	ProgressLabelStyle = fg(TextColor).PaddingLeft(2)
	StepCompleteStyle  = fg(SuccessColor)
	StepRunningStyle   = fg(WarningColor)
	StepPendingStyle   = fg(MutedColor)
	StepNoteStyle      = fg(MutedColor).Italic(true)

	SuccessTitleStyle = fg(SuccessColor).Bold(true)
	ErrorTitleStyle   = fg(ErrorColor).Bold(true)
	ErrorMessageStyle = fg(ErrorColor)
	ResultKeyStyle    = fg(MutedColor).Width(18)
	ResultValueStyle  = fg(TextColor)

	TroubleshootingTitleStyle = fg(MutedColor).Bold(true)
	TroubleshootingItemStyle  = fg(MutedColor)

	OutputTitleStyle   = fg(MutedColor).Bold(true)
	OutputContentStyle = fg(TextColor)
)

// Markers for step lines and result headings.
const (
	StepMarkerComplete = "✓"
	StepMarkerRunning  = "●"
	StepMarkerPending  = "·"
	StepMarkerSkipped  = "⊘"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
	WarningMarker      = "⚠"
)

// GetTerminalWidth returns the width of stdout clamped to
// [MinTerminalWidth, MaxContentWidth]. Output that is not a terminal gets
// MinTerminalWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}
