package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("Expected server URL %s, got %s", DefaultServerURL, cfg.ServerURL)
	}
	if cfg.PollIntervalSeconds != DefaultPollSeconds {
		t.Errorf("Expected poll interval %d, got %d", DefaultPollSeconds, cfg.PollIntervalSeconds)
	}
	if !cfg.ShowLiveFeed {
		t.Error("Expected live feed enabled by default")
	}
	if cfg.Theme != "" {
		t.Errorf("Expected empty theme by default, got %s", cfg.Theme)
	}
}

func TestPollInterval(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected time.Duration
	}{
		{"configured", 10, 10 * time.Second},
		{"zero falls back", 0, DefaultPollSeconds * time.Second},
		{"negative falls back", -5, DefaultPollSeconds * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{PollIntervalSeconds: tt.seconds}
			if got := cfg.PollInterval(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Config{
		ServerURL:           "http://192.168.1.20:5010",
		PollIntervalSeconds: 10,
		Theme:               "gruvbox",
		ShowLiveFeed:        false,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip mismatch: want %+v, got %+v", want, got)
	}
}

func TestLoadOrDefault_PartialFile(t *testing.T) {
	// Unset keys keep their defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server_url = \"http://backend:5010\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.ServerURL != "http://backend:5010" {
		t.Errorf("Expected overridden server URL, got %s", cfg.ServerURL)
	}
	if cfg.PollIntervalSeconds != DefaultPollSeconds {
		t.Errorf("Expected default poll interval, got %d", cfg.PollIntervalSeconds)
	}
}

func TestLoadOrDefault_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server_url = [broken"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadOrDefault(path)
	if err == nil {
		t.Fatal("Expected an error for a malformed config file")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}
