package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderApplicationContainerFillsScreen(t *testing.T) {
	tests := []struct {
		name   string
		header string
		footer string
	}{
		{"header and footer", "HEADER", "q quit"},
		{"no header", "", "q quit"},
		{"no footer", "HEADER", ""},
		{"bare", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderApplicationContainer(tt.header, "body text", tt.footer, 40, 12)

			if got := lipgloss.Height(out); got != 12 {
				t.Errorf("height = %d, want 12", got)
			}
			if got := lipgloss.Width(out); got != 40 {
				t.Errorf("width = %d, want 40", got)
			}
			if !strings.Contains(out, "body text") {
				t.Error("content missing")
			}
			if tt.header != "" && !strings.Contains(out, tt.header) {
				t.Error("header missing")
			}
			if tt.footer != "" && !strings.Contains(out, tt.footer) {
				t.Error("footer missing")
			}
		})
	}
}

func TestRenderApplicationContainerDefaultsSize(t *testing.T) {
	out := RenderApplicationContainer("", "x", "", 0, 0)
	if got := lipgloss.Height(out); got != DefaultHeight {
		t.Errorf("height = %d, want %d", got, DefaultHeight)
	}
}

func TestRenderModal(t *testing.T) {
	out := RenderModal("This is a popup window!", 50, 15)

	if got := lipgloss.Height(out); got != 15 {
		t.Errorf("height = %d, want 15", got)
	}
	if !strings.Contains(out, "This is a popup window!") {
		t.Error("modal content missing")
	}
	if !strings.Contains(out, "░") {
		t.Error("backdrop missing")
	}
}

func TestSafeModalWidth(t *testing.T) {
	tests := []struct {
		requested, terminal, want int
	}{
		{30, 100, 30},
		{120, 100, 96},
		{60, 10, 20},
	}
	for _, tt := range tests {
		if got := SafeModalWidth(tt.requested, tt.terminal); got != tt.want {
			t.Errorf("SafeModalWidth(%d, %d) = %d, want %d", tt.requested, tt.terminal, got, tt.want)
		}
	}
}
