// Package ui holds the chrome shared by every tuibox screen and command.
//
// Interactive demos use:
//
//   - Theme: named colour palettes (default, gruvbox, nord, dracula)
//   - Header: title bar model with an optional clock and a tall mode
//   - RenderApplicationContainer / RenderModal: full-screen layout and overlays
//   - Footer: key binding help from bubbles/help
//
// Non-interactive commands (snapshot, doctor, config) print through a
// Printer or a Runner, which renders a Banner, step Progress and a Result box:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Snapshot",
//	    Command:   "tuibox snapshot",
//	    StepNames: []string{"Connect", "Fetch", "Write"},
//	})
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) (map[string]string, error) {
//	    onStep(1, "", ui.StepRunning, "")
//	    ...
//	})
//
// Zap logging stays silent unless TUIBOX_LOG_LEVEL is set, so this output is
// never interleaved with log lines.
package ui
