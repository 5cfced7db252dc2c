package cmd

import (
	"net/http"
	"strings"
	"testing"

	"github.com/attendash/attendash/internal/timeutil"
)

func TestShowDailyReport(t *testing.T) {
	stdout, _, exitCode := setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/daily/42" {
			t.Errorf("expected path /reports/daily/42, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2024-01-15" {
			t.Errorf("expected date 2024-01-15, got %s", got)
		}
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"date": "2024-01-15",
				"formatted_time": "7h 30m",
				"total_hours": 7.5,
				"total_minutes": 450,
				"details": [{"entry": "09:00:12", "exit": "16:30:40", "duration": "7:30:28"}]
			}
		}`))
	})

	showDailyReport("42", "2024-01-15")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	for _, want := range []string{
		"Daily Attendance Report",
		"Date: 2024-01-15",
		"Total Time Inside: 7h 30m",
		"Total Hours:       7.5",
		"Total Minutes:     450",
		"Entry Time",
		"09:00:12",
		"7:30:28 hours",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestShowDailyReport_DefaultsToToday(t *testing.T) {
	var gotDate string
	_, _, _ = setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`{"status": "success", "data": {"date": "` + gotDate + `", "formatted_time": "0h 0m", "total_hours": 0, "total_minutes": 0, "details": []}}`))
	})

	showDailyReport("42", "")

	if gotDate != timeutil.Today() {
		t.Errorf("expected today's date, got %q", gotDate)
	}
}

func TestShowDailyReport_NoRecords(t *testing.T) {
	stdout, _, _ := setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"date": "2024-01-15", "formatted_time": "0h 0m", "total_hours": 0, "total_minutes": 0, "details": []}}`))
	})

	showDailyReport("42", "2024-01-15")

	if !strings.Contains(stdout.String(), "No attendance records") {
		t.Errorf("expected empty records message, got: %s", stdout.String())
	}
}

func TestShowDailyReport_BackendFailure(t *testing.T) {
	_, stderr, exitCode := setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "no such employee"}`))
	})

	showDailyReport("999", "2024-01-15")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error fetching report: no such employee") {
		t.Errorf("expected failure message, got: %s", stderr.String())
	}
}

func TestShowWeeklyReport(t *testing.T) {
	stdout, _, exitCode := setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/weekly/42" {
			t.Errorf("expected path /reports/weekly/42, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2024-01-08" || q.Get("end_date") != "2024-01-14" {
			t.Errorf("unexpected range query: %v", q)
		}
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"total_time": "38h 12m",
				"daily_breakdown": [
					{"date": "2024-01-08", "formatted_time": "8h 02m"},
					{"date": "2024-01-09", "formatted_time": "7h 55m"}
				]
			}
		}`))
	})

	showWeeklyReport("42", "2024-01-08", "2024-01-14")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	for _, want := range []string{"Weekly Attendance Report", "Total Time: 38h 12m", "2024-01-08", "8h 02m", "2024-01-09"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestShowWeeklyReport_MissingDates(t *testing.T) {
	requests := 0
	_, stderr, exitCode := setupCommandTest(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"status": "success", "data": {}}`))
	})

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"missing from", "", "2024-01-14"},
		{"missing to", "2024-01-08", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr.Reset()
			*exitCode = 0

			showWeeklyReport("42", tt.from, tt.to)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), "Warning: Please select start and end dates") {
				t.Errorf("expected warning, got: %s", stderr.String())
			}
		})
	}

	if requests != 0 {
		t.Errorf("expected no request without both dates, got %d", requests)
	}
}

func TestFormatReportTotal(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{7.5, "7.5"},
		{450, "450"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatReportTotal(tt.value); got != tt.expected {
			t.Errorf("formatReportTotal(%v): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}
