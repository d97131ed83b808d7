// Package demos holds every tuibox demo as a Bubble Tea model.
//
// A Demo pairs a name with a constructor taking an Env, which carries the
// config, theme, clock, store opener and browser helper a demo may need.
// Tests swap those for fakes through the same Env.
//
// Demos are run inside a Host. The Host owns ctrl+c (unless the demo claims
// it), forwards window sizes and records the value a demo quits with:
//
//	value, err := demos.Run(ctx, d, demos.NewEnv(cfg, store.SourceSample))
//
// A demo ends by returning Quit(value) rather than tea.Quit, so the gallery
// can catch it and return to its list instead of exiting.
//
// # Data-backed demos
//
// The videos and feed demos load channels through the store package on a
// background command. Results carry a generation number so a late reply from
// a superseded load is dropped. Store failures are shown in place with
// troubleshooting hints; r retries.
package demos
