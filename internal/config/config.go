package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory
	AppName = "attendash"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// DefaultServerURL is the backend address used when none is configured
	DefaultServerURL = "http://localhost:5010"
	// DefaultPollSeconds is the directory poll period used when none is configured
	DefaultPollSeconds = 30
)

// Config represents the application configuration
type Config struct {
	// ServerURL is the base URL of the attendance backend
	ServerURL string `toml:"server_url"`
	// PollIntervalSeconds is the directory refresh period in the dashboard
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	// Theme is the dashboard color theme (bubbletint theme name)
	Theme string `toml:"theme"`
	// ShowLiveFeed controls whether the dashboard header shows the
	// live video feed address
	ShowLiveFeed bool `toml:"show_live_feed"`
}

// DefaultConfig returns a Config with defaults matching a local backend.
func DefaultConfig() Config {
	return Config{
		ServerURL:           DefaultServerURL,
		PollIntervalSeconds: DefaultPollSeconds,
		Theme:               "",
		ShowLiveFeed:        true,
	}
}

// PollInterval returns the directory poll period as a duration, falling
// back to the default when the configured value is not positive.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return DefaultPollSeconds * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path, returning defaults when the
// file does not exist. A file that exists but cannot be parsed is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path in TOML format.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
