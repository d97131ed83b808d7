// Package logging provides structured logging for tuibox.
//
// It wraps a global zap logger behind a few package-level helpers. Logging is
// silent by default; set TUIBOX_LOG_LEVEL (or pass --log-level) to enable it.
//
// Because every demo runs as a full-screen Bubble Tea program, log lines never
// go to the terminal. They are appended to TUIBOX_LOG_FILE, or to tuibox.log in
// the config directory when started from the CLI:
//
//	if err := logging.Initialize("debug", "/tmp/tuibox.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Domain helpers
//
//	logging.LogStoreOp("channels", "mongo", took, err)
//	logging.LogAction("feed", "toggle_seen")
//	logging.LogScreen("push", "popup")
package logging
