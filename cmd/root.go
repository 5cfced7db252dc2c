package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/api"
)

var rootCmd = &cobra.Command{
	Use:   "attendash",
	Short: "A terminal client for the attendance check-in dashboard",
	Long: `attendash is a client for an attendance/check-in backend.

Usage:
  attendash                                     List registered users and their status
  attendash dash                                Launch the interactive dashboard
  attendash register <name> <employee-id>       Register a new employee
  attendash status <employee-id>                Check an employee's current status
  attendash report daily <employee-id>          Fetch a daily attendance report
  attendash report weekly <employee-id>         Fetch a weekly attendance report
  attendash purge                               Delete all users (with confirmation)
  attendash config                              Display or change settings

The backend address is read from the config file (server_url); it defaults
to http://localhost:5010.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showDirectory()
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"attendash version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showDirectory fetches and prints the full user directory once.
func showDirectory() {
	client, ok := backendClient()
	if !ok {
		return
	}

	users, err := client.ListUsers(context.Background())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error fetching users: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(users) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No users registered")
		return
	}

	printUserTable(deps.Stdout, users)
}

// printUserTable writes the directory as an aligned table, one row per
// user in backend order.
func printUserTable(w io.Writer, users []api.User) {
	headers := []string{"ID", "Name", "Current Status", "Last Update"}
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Status.Status,
			u.Status.LastUpdate(),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	total := 0
	for _, wd := range widths {
		total += wd + 2
	}

	printRow := func(row []string) {
		var cells []string
		for i, cell := range row {
			cells = append(cells, fmt.Sprintf("%-*s", widths[i], cell))
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "  "))
	}

	printRow(headers)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", total))
	for _, row := range rows {
		printRow(row)
	}
}
