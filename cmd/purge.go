package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/api"
)

// purgeCmd represents the purge command
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all registered users",
	Long: `Delete every registered user and all related attendance data.

This action is irreversible, so an interactive confirmation is required
unless --yes is passed. Declining the confirmation leaves the backend
untouched.

Examples:
  attendash purge
  attendash purge --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		purgeAllUsers(skipConfirm)
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

// purgeAllUsers deletes all users after an explicit confirmation.
// A declined confirmation is silent: no request, no output.
func purgeAllUsers(skipConfirm bool) {
	if !skipConfirm {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Delete all users?").
			Description("This removes every user and all attendance data. This action cannot be undone.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Confirmation prompt failed: %v\n", err)
			deps.Exit(1)
			return
		}
		if !confirmed {
			return
		}
	}

	client, ok := backendClient()
	if !ok {
		return
	}

	if err := client.DeleteAllUsers(context.Background()); err != nil {
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error deleting users: %s\n", srvErr.Message)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Network error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "All users deleted successfully")
}
