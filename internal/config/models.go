package config

import (
	"time"

	"github.com/muurk/tuibox/internal/urls"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Config is the whole tuibox configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	UI       UIConfig       `yaml:"ui"`
}

// MongoConfig points at the live document store the feed demos read from.
type MongoConfig struct {
	// URI is normally supplied through MONGO_URI (or a .env file) rather than
	// written to disk, since it usually embeds credentials.
	URI        string        `yaml:"uri,omitempty"`
	Database   string        `yaml:"database"`
	Collection string        `yaml:"collection"`
	View       string        `yaml:"view"`
	Timeout    time.Duration `yaml:"timeout"`
}

// SnapshotConfig locates the local sqlite copy of a view.
type SnapshotConfig struct {
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds presentation preferences shared by all demos.
type UIConfig struct {
	Theme        string `yaml:"theme"`
	FreshDays    int    `yaml:"fresh_days"`
	ClockFormat  string `yaml:"clock_format"`
	WatchURLBase string `yaml:"watch_url_base"`
}

// Default values
const (
	DefaultDatabase     = "youtube_data"
	DefaultCollection   = "videos"
	DefaultView         = "latest_20"
	DefaultTimeout      = 5 * time.Second
	DefaultTheme        = "default"
	DefaultFreshDays    = 2
	DefaultClockFormat  = "15:04:05"
	DefaultWatchURLBase = urls.YouTubeWatch
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Mongo: MongoConfig{
			Database:   DefaultDatabase,
			Collection: DefaultCollection,
			View:       DefaultView,
			Timeout:    DefaultTimeout,
		},
		UI: UIConfig{
			Theme:        DefaultTheme,
			FreshDays:    DefaultFreshDays,
			ClockFormat:  DefaultClockFormat,
			WatchURLBase: DefaultWatchURLBase,
		},
	}
}

// fillDefaults replaces zero values left by a partial YAML file.
func (c *Config) fillDefaults() {
	d := New()
	if c.Mongo.Database == "" {
		c.Mongo.Database = d.Mongo.Database
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = d.Mongo.Collection
	}
	if c.Mongo.View == "" {
		c.Mongo.View = d.Mongo.View
	}
	if c.Mongo.Timeout <= 0 {
		c.Mongo.Timeout = d.Mongo.Timeout
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.UI.FreshDays <= 0 {
		c.UI.FreshDays = d.UI.FreshDays
	}
	if c.UI.ClockFormat == "" {
		c.UI.ClockFormat = d.UI.ClockFormat
	}
	if c.UI.WatchURLBase == "" {
		c.UI.WatchURLBase = d.UI.WatchURLBase
	}
}

// Redacted returns a copy safe to print: the Mongo URI's userinfo is masked.
func (c *Config) Redacted() *Config {
	cp := *c
	cp.Mongo.URI = redactURI(c.Mongo.URI)
	return &cp
}
