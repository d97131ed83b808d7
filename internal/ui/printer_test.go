package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact phrase", "overwrite\n", true},
		{"phrase without newline", "overwrite", true},
		{"surrounding space", "  overwrite  \n", true},
		{"wrong phrase", "yes\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrinter(&out).SetWidth(80)

			got := p.Confirm(strings.NewReader(tt.input), "Config exists", []string{"The file will be replaced"}, "overwrite")
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Config exists") {
				t.Error("warning box not printed")
			}
			if !tt.want && !strings.Contains(out.String(), "Operation cancelled.") {
				t.Error("cancel message not printed")
			}
		})
	}
}

func TestPrinterBoxes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out).SetWidth(70)

	p.PrintBanner("Doctor", "tuibox doctor", nil)
	p.PrintOutput("config.yaml", "version: 1\nui:\n  theme: nord\n")
	p.PrintWarning("Snapshot missing", map[string]string{"Path": "/tmp/x.db"})

	s := out.String()
	for _, want := range []string{"DOCTOR", "tuibox doctor", "config.yaml", "theme: nord", "Snapshot missing", "/tmp/x.db"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestOutputBoxMaxLines(t *testing.T) {
	out := NewOutputBox("log", "a\nb\nc\nd").SetWidth(70).SetMaxLines(2).Render()
	if !strings.Contains(out, "... 2 more lines") {
		t.Errorf("expected truncation note:\n%s", out)
	}
	if strings.Contains(out, " c ") {
		t.Errorf("hidden line rendered:\n%s", out)
	}
}
