package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/api"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <employee-id>",
	Short: "Check an employee's current attendance status",
	Long: `Check the current attendance status of a single employee.

Displays the latest recorded status and the timestamp of the last update.
An employee with no recorded events shows N/A for the last update.

Examples:
  attendash status 42`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkStatus(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// checkStatus fetches and prints one employee's status block.
func checkStatus(employeeID string) {
	client, ok := backendClient()
	if !ok {
		return
	}

	record, err := client.EmployeeStatus(context.Background(), employeeID)
	if err != nil {
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error checking status: %s\n", srvErr.Message)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Network error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Current Status: %s\n", record.Status)
	_, _ = fmt.Fprintf(deps.Stdout, "Last Update: %s\n", record.LastUpdate())
}
