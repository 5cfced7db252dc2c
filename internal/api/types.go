package api

// NoTimestamp is the placeholder rendered when a status record carries no
// last-update timestamp.
const NoTimestamp = "N/A"

// User is a registered employee together with their current attendance
// status, as returned by the directory endpoint. Records are replaced
// wholesale on every fetch and never mutated in place.
type User struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Status StatusRecord `json:"status"`
}

// StatusRecord is the current attendance state of a single employee.
// Status is an open string set; the backend is known to produce "entry",
// "exit" and "unknown", but unrecognized values must still render.
type StatusRecord struct {
	Status        string  `json:"status"`
	LastTimestamp *string `json:"last_timestamp"`
}

// LastUpdate returns the last-update timestamp, or the NoTimestamp
// placeholder when the backend sent none.
func (r StatusRecord) LastUpdate() string {
	if r.LastTimestamp == nil || *r.LastTimestamp == "" {
		return NoTimestamp
	}
	return *r.LastTimestamp
}

// TimeBlock is one entry/exit pair inside a daily report. The backend
// sends blocks in chronological order and the client preserves it.
type TimeBlock struct {
	Entry    string `json:"entry"`
	Exit     string `json:"exit"`
	Duration string `json:"duration"`
}

// DailyReport is the aggregate time-tracking data for one employee on a
// single date.
type DailyReport struct {
	Date          string      `json:"date"`
	FormattedTime string      `json:"formatted_time"`
	TotalHours    float64     `json:"total_hours"`
	TotalMinutes  float64     `json:"total_minutes"`
	Details       []TimeBlock `json:"details"`
}

// DayTotal is one day's line in a weekly report breakdown.
type DayTotal struct {
	Date          string `json:"date"`
	FormattedTime string `json:"formatted_time"`
}

// WeeklyReport is the aggregate time-tracking data for one employee over
// a date range.
type WeeklyReport struct {
	TotalTime      string     `json:"total_time"`
	DailyBreakdown []DayTotal `json:"daily_breakdown"`
}

// registerRequest is the JSON body of the employee registration endpoint.
type registerRequest struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
}
