package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/config"
	"github.com/attendash/attendash/internal/tui/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for attendash.

Shows the configuration file location, whether it exists, and all current
settings. Values are merged from the config file with defaults, so
attendash works without any configuration file:
  - server_url: http://localhost:5010
  - poll_interval_seconds: 30
  - theme: (empty, uses the default dashboard theme)
  - show_live_feed: true

Examples:

  Display current configuration:
    attendash config

  Change a setting:
    attendash config set server_url http://192.168.1.20:5010
    attendash config set theme gruvbox

Configuration file location:
  ~/.config/attendash/config.toml    Linux/macOS
  %APPDATA%\attendash\config.toml    Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration setting",
	Long: `Change one configuration setting and write it to the config file.

Available keys:
  server_url             Base URL of the attendance backend
  poll_interval_seconds  Directory refresh period in the dashboard
  theme                  Dashboard color theme
  show_live_feed         Whether the dashboard shows the live feed address

Examples:
  attendash config set server_url http://192.168.1.20:5010
  attendash config set poll_interval_seconds 10
  attendash config set theme nord
  attendash config set show_live_feed false`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setConfigValue(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for attendash")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:            %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:                 File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:                 No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Server URL:             %s\n", cfg.ServerURL)
	_, _ = fmt.Fprintf(deps.Stdout, "Poll Interval:          %ds\n", cfg.PollIntervalSeconds)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:                  (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:                  %s\n", cfg.Theme)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Show Live Feed:         %t\n", cfg.ShowLiveFeed)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Use 'attendash config set <key> <value>' to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// setConfigValue validates one setting, applies it on top of the current
// configuration and persists the result.
func setConfigValue(key, value string) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "poll_interval_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: poll_interval_seconds must be a positive integer, got %q\n", value)
			deps.Exit(1)
			return
		}
		cfg.PollIntervalSeconds = seconds
	case "theme":
		if !ui.NewThemeProvider("").SetTheme(value) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: unknown theme %q\n", value)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: run the dashboard and press 't' to browse themes")
			deps.Exit(1)
			return
		}
		cfg.Theme = value
	case "show_live_feed":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: show_live_feed must be true or false, got %q\n", value)
			deps.Exit(1)
			return
		}
		cfg.ShowLiveFeed = enabled
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: unknown setting %q\n", key)
		_, _ = fmt.Fprintln(deps.Stderr, "Valid keys: server_url, poll_interval_seconds, theme, show_live_feed")
		deps.Exit(1)
		return
	}

	if err := config.Save(configPath, cfg); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated %s\n", key)
}
