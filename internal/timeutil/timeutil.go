// Package timeutil provides the date and clock formatting helpers shared
// by the CLI and the dashboard.
package timeutil

import "time"

// ISODate is the calendar date layout the backend expects in report
// parameters.
const ISODate = "2006-01-02"

// Today returns the current calendar date as YYYY-MM-DD.
//
// The date is taken in the process-local timezone. A backend running in a
// different timezone may disagree about which day "today" is; that skew is
// inherited from the upstream behavior and left to the operator to resolve
// by passing an explicit date.
func Today() string {
	return time.Now().Format(ISODate)
}

// Clock formats a combined date and time string for the clock region.
func Clock(t time.Time) string {
	return t.Format("Mon Jan 2 2006 15:04:05")
}
