package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/api"
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register <name> <employee-id>",
	Short: "Register a new employee",
	Long: `Register a new employee with the attendance backend.

Both the name and the employee ID are required. The backend assigns the
internal record and starts tracking the employee's check-ins.

Examples:
  attendash register "Alice Smith" 42`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		registerEmployee(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

// registerEmployee validates presence of both fields locally, then
// submits the registration.
func registerEmployee(name, employeeID string) {
	name = strings.TrimSpace(name)
	employeeID = strings.TrimSpace(employeeID)
	if name == "" || employeeID == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Please fill in all fields")
		deps.Exit(1)
		return
	}

	client, ok := backendClient()
	if !ok {
		return
	}

	if err := client.Register(context.Background(), name, employeeID); err != nil {
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) {
			_, _ = fmt.Fprintf(deps.Stderr, "Registration failed: %s\n", srvErr.Message)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Network error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Employee %s registered successfully\n", name)
}
