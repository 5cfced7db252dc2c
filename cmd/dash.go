package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/tui"
)

// dashCmd represents the dash command
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard shows a clock, polls the user directory on a fixed
interval, and exposes every backend operation:

Views available:
  - Directory: all registered users with live status (auto-refreshing)
  - Reports: daily and weekly attendance reports
  - Register: add new employees
  - Status: check a single employee's status

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-4: Jump to a specific view
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDashboard()
	},
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

// runDashboard initializes the backend client and runs the dashboard.
func runDashboard() {
	cfg, err := deps.Config()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(deps.Client(cfg), cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
