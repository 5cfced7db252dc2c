package cmd

import (
	"io"
	"os"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/config"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)

	// ConfigPath resolves the configuration file location.
	ConfigPath func() (string, error)
	// Config loads the application configuration.
	Config func() (config.Config, error)
	// Client builds the backend client for the given configuration.
	Client func(cfg config.Config) *api.Client
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Exit:       os.Exit,
		ConfigPath: config.GetConfigPath,
		Config:     loadConfig,
		Client: func(cfg config.Config) *api.Client {
			return api.New(cfg.ServerURL)
		},
	}
}

func loadConfig() (config.Config, error) {
	path, err := deps.ConfigPath()
	if err != nil {
		return config.DefaultConfig(), err
	}
	return config.LoadOrDefault(path)
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
// Assigned in init rather than at declaration to avoid an
// initialization cycle (DefaultDeps -> loadConfig -> deps).
var deps *Deps

func init() {
	deps = DefaultDeps()
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// backendClient loads the configuration and builds the backend client.
// Returns false after reporting the error when configuration loading
// fails.
func backendClient() (*api.Client, bool) {
	cfg, err := deps.Config()
	if err != nil {
		_, _ = io.WriteString(deps.Stderr, "Error: Failed to load configuration\n")
		_, _ = io.WriteString(deps.Stderr, "Details: "+err.Error()+"\n")
		deps.Exit(1)
		return nil, false
	}
	return deps.Client(cfg), true
}
