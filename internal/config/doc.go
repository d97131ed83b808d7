// Package config loads and saves the tuibox configuration.
//
// The configuration is a small YAML file that says where the document store
// lives and how the demos look. Values are layered:
//
//  1. built-in defaults (New)
//  2. the YAML file ($XDG_CONFIG_HOME/tuibox/config.yaml by default)
//  3. a .env file in the working directory, never overriding the real environment
//  4. environment variables (MONGO_URI, TUIBOX_MONGO_VIEW, TUIBOX_THEME, ...)
//
// CLI flags are applied on top by cmd/tuibox.
//
// # Security
//
// The MongoDB URI usually carries credentials. Save never writes it, and
// Redacted masks it for display.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Mongo.View) // "latest_20"
package config
