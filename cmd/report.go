package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/timeutil"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch attendance reports",
	Long: `Fetch aggregate time-tracking reports from the backend.

Subcommands:
  daily   Report for a single date (defaults to today)
  weekly  Report over a start/end date range`,
}

// reportDailyCmd represents the report daily command
var reportDailyCmd = &cobra.Command{
	Use:   "daily <employee-id>",
	Short: "Fetch a daily attendance report",
	Long: `Fetch the attendance report for one employee on a single date.

When --date is omitted, the current local calendar date is used. Note
that a backend in a different timezone may consider "today" a different
date.

Examples:
  attendash report daily 42
  attendash report daily 42 --date 2024-01-15`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		showDailyReport(args[0], date)
	},
}

// reportWeeklyCmd represents the report weekly command
var reportWeeklyCmd = &cobra.Command{
	Use:   "weekly <employee-id>",
	Short: "Fetch a weekly attendance report",
	Long: `Fetch the attendance report for one employee over a date range.

Both --from and --to are required.

Examples:
  attendash report weekly 42 --from 2024-01-08 --to 2024-01-14`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		showWeeklyReport(args[0], from, to)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportDailyCmd)
	reportCmd.AddCommand(reportWeeklyCmd)

	reportDailyCmd.Flags().String("date", "", "Report date (YYYY-MM-DD, default today)")
	reportWeeklyCmd.Flags().String("from", "", "Range start date (YYYY-MM-DD)")
	reportWeeklyCmd.Flags().String("to", "", "Range end date (YYYY-MM-DD)")
}

// showDailyReport fetches and prints a daily report.
func showDailyReport(employeeID, date string) {
	if strings.TrimSpace(date) == "" {
		date = timeutil.Today()
	}

	client, ok := backendClient()
	if !ok {
		return
	}

	report, err := client.DailyReport(context.Background(), employeeID, date)
	if err != nil {
		reportFetchError(err, "Error fetching report: ")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Daily Attendance Report")
	_, _ = fmt.Fprintf(deps.Stdout, "Date: %s\n", report.Date)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Time Analysis")
	_, _ = fmt.Fprintf(deps.Stdout, "  Total Time Inside: %s\n", report.FormattedTime)
	_, _ = fmt.Fprintf(deps.Stdout, "  Total Hours:       %s\n", formatReportTotal(report.TotalHours))
	_, _ = fmt.Fprintf(deps.Stdout, "  Total Minutes:     %s\n", formatReportTotal(report.TotalMinutes))
	_, _ = fmt.Fprintln(deps.Stdout)

	if len(report.Details) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No attendance records")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%-12s %-12s %s\n", "Entry Time", "Exit Time", "Duration")
	for _, block := range report.Details {
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %-12s %s hours\n", block.Entry, block.Exit, block.Duration)
	}
}

// showWeeklyReport fetches and prints a weekly report. Both dates are
// required; missing dates abort locally without a request.
func showWeeklyReport(employeeID, from, to string) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Please select start and end dates")
		deps.Exit(1)
		return
	}

	client, ok := backendClient()
	if !ok {
		return
	}

	report, err := client.WeeklyReport(context.Background(), employeeID, from, to)
	if err != nil {
		reportFetchError(err, "Error fetching weekly report: ")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Weekly Attendance Report")
	_, _ = fmt.Fprintf(deps.Stdout, "Total Time: %s\n", report.TotalTime)
	_, _ = fmt.Fprintln(deps.Stdout)

	if len(report.DailyBreakdown) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No attendance records")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%-12s %s\n", "Date", "Time Inside")
	for _, day := range report.DailyBreakdown {
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %s\n", day.Date, day.FormattedTime)
	}
}

// reportFetchError prints a fetch failure and exits non-zero.
func reportFetchError(err error, prefix string) {
	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		_, _ = fmt.Fprintf(deps.Stderr, "%s%s\n", prefix, srvErr.Message)
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Network error: %v\n", err)
	}
	deps.Exit(1)
}

// formatReportTotal renders a report total without forcing a decimal
// point onto whole numbers.
func formatReportTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
