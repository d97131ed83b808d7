package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "tuibox"
	configFile = "config.yaml"
	snapshotDB = "snapshot.db"
	dotEnvFile = ".env"
)

// Environment variables consulted after the YAML file.
const (
	EnvMongoURI        = "MONGO_URI"
	EnvMongoDatabase   = "TUIBOX_MONGO_DATABASE"
	EnvMongoCollection = "TUIBOX_MONGO_COLLECTION"
	EnvMongoView       = "TUIBOX_MONGO_VIEW"
	EnvSnapshotPath    = "TUIBOX_SNAPSHOT_PATH"
	EnvTheme           = "TUIBOX_THEME"
	EnvFreshDays       = "TUIBOX_FRESH_DAYS"
)

// fileMutex serializes Save calls within the process.
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/tuibox or $HOME/.config/tuibox
//   - macOS: $HOME/.config/tuibox
//   - Windows: %LOCALAPPDATA%\tuibox
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", errors.New("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load builds the effective configuration:
// defaults, then the YAML file at path (default location when empty),
// then a .env file in the working directory, then environment variables.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = filepath.Join(filepath.Dir(path), snapshotDB)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, CurrentVersion)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv(EnvMongoDatabase); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv(EnvMongoCollection); v != "" {
		c.Mongo.Collection = v
	}
	if v := os.Getenv(EnvMongoView); v != "" {
		c.Mongo.View = v
	}
	if v := os.Getenv(EnvSnapshotPath); v != "" {
		c.Snapshot.Path = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv(EnvFreshDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFreshDays, err)
		}
		c.UI.FreshDays = days
	}
	return nil
}

// Validate checks values that would otherwise fail deep inside a demo.
func (c *Config) Validate() error {
	if c.UI.FreshDays < 0 {
		return fmt.Errorf("ui.fresh_days must not be negative, got %d", c.UI.FreshDays)
	}
	if c.Mongo.Timeout <= 0 {
		return fmt.Errorf("mongo.timeout must be positive, got %s", c.Mongo.Timeout)
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" || c.Mongo.View == "" {
		return errors.New("mongo.database, mongo.collection and mongo.view are required")
	}
	return nil
}

// Save writes the configuration to path atomically. The Mongo URI is never
// persisted; it belongs in the environment.
func (c *Config) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *c
	out.Mongo.URI = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# tuibox configuration file
#
# The MongoDB connection string is read from MONGO_URI (or a .env file)
# and is never written here.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

func redactURI(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	if u.User != nil {
		u.User = url.UserPassword("xxxxx", "xxxxx")
	}
	return u.String()
}
