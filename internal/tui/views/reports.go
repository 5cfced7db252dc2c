package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/timeutil"
	"github.com/attendash/attendash/internal/tui/ui"
)

// reportMode represents the current mode of the reports view
type reportMode int

const (
	reportModeNormal reportMode = iota
	reportModeDaily
	reportModeWeekly
)

// reportKind identifies which report currently occupies the display
// region. Daily and weekly reports share the region; each successful
// fetch replaces whatever was shown before.
type reportKind int

const (
	reportNone reportKind = iota
	reportDaily
	reportWeekly
)

// ReportsModel is the model for the attendance reports view.
type ReportsModel struct {
	client *api.Client
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	showing reportKind
	daily   *api.DailyReport
	weekly  *api.WeeklyReport

	// Input state
	mode       reportMode
	idInput    textinput.Model
	dateInput  textinput.Model
	startInput textinput.Model
	endInput   textinput.Model
	focused    int

	// seq is the latest issued report request; stale completions are
	// discarded regardless of arrival order.
	seq int
}

// NewReportsModel creates a new reports view model
func NewReportsModel(client *api.Client, styles ui.Styles, keys ui.KeyMap) ReportsModel {
	idInput := textinput.New()
	idInput.Placeholder = "Employee ID..."
	idInput.CharLimit = 40
	idInput.Width = 24

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD (empty = today)"
	dateInput.CharLimit = 10
	dateInput.Width = 26

	startInput := textinput.New()
	startInput.Placeholder = "Start YYYY-MM-DD"
	startInput.CharLimit = 10
	startInput.Width = 18

	endInput := textinput.New()
	endInput.Placeholder = "End YYYY-MM-DD"
	endInput.CharLimit = 10
	endInput.Width = 18

	return ReportsModel{
		client:     client,
		styles:     styles,
		keys:       keys,
		idInput:    idInput,
		dateInput:  dateInput,
		startInput: startInput,
		endInput:   endInput,
	}
}

// dailyReportMsg is sent when a daily report fetch completes
type dailyReportMsg struct {
	seq    int
	report *api.DailyReport
	err    error
}

// weeklyReportMsg is sent when a weekly report fetch completes
type weeklyReportMsg struct {
	seq    int
	report *api.WeeklyReport
	err    error
}

// Init implements tea.Model
func (m ReportsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ReportsModel) Update(msg tea.Msg) (ReportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != reportModeNormal {
			return m.handleFormMode(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Daily):
			m.mode = reportModeDaily
			return m, m.focusField(0)
		case key.Matches(msg, m.keys.Weekly):
			m.mode = reportModeWeekly
			return m, m.focusField(0)
		}

	case dailyReportMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			// Previously rendered report stays in place.
			return m, notifyFailure(msg.err, "Error fetching report: ")
		}
		m.daily = msg.report
		m.showing = reportDaily
		return m, nil

	case weeklyReportMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m, notifyFailure(msg.err, "Error fetching weekly report: ")
		}
		m.weekly = msg.report
		m.showing = reportWeekly
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// fields returns the input fields active in the current form mode.
func (m *ReportsModel) fields() []*textinput.Model {
	if m.mode == reportModeWeekly {
		return []*textinput.Model{&m.idInput, &m.startInput, &m.endInput}
	}
	return []*textinput.Model{&m.idInput, &m.dateInput}
}

// focusField moves focus to the field at index i.
func (m *ReportsModel) focusField(i int) tea.Cmd {
	fields := m.fields()
	m.focused = i
	for j, f := range fields {
		if j == i {
			f.Focus()
		} else {
			f.Blur()
		}
	}
	return textinput.Blink
}

// handleFormMode handles key events while a report form is open.
func (m ReportsModel) handleFormMode(msg tea.KeyMsg) (ReportsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		return m.submit()
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = reportModeNormal
		for _, f := range m.fields() {
			f.Blur()
		}
		return m, nil
	case msg.String() == "tab":
		next := (m.focused + 1) % len(m.fields())
		return m, m.focusField(next)
	}

	var cmd tea.Cmd
	fields := m.fields()
	*fields[m.focused], cmd = fields[m.focused].Update(msg)
	return m, cmd
}

// submit issues the report request for the open form. The weekly form
// requires both dates; the daily form defaults an empty date to today.
func (m ReportsModel) submit() (ReportsModel, tea.Cmd) {
	id := strings.TrimSpace(m.idInput.Value())

	if m.mode == reportModeWeekly {
		start := strings.TrimSpace(m.startInput.Value())
		end := strings.TrimSpace(m.endInput.Value())
		if start == "" || end == "" {
			return m, ui.Notify("Please select start and end dates", ui.NoticeWarning)
		}
		m.mode = reportModeNormal
		for _, f := range m.fields() {
			f.Blur()
		}
		m.seq++
		return m, m.fetchWeekly(m.seq, id, start, end)
	}

	date := strings.TrimSpace(m.dateInput.Value())
	if date == "" {
		date = timeutil.Today()
	}
	m.mode = reportModeNormal
	for _, f := range m.fields() {
		f.Blur()
	}
	m.seq++
	return m, m.fetchDaily(m.seq, id, date)
}

// View implements tea.Model
func (m ReportsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Attendance Reports"))
	b.WriteString("\n\n")

	switch m.mode {
	case reportModeDaily:
		b.WriteString(m.renderForm("Daily Report", []formField{
			{"Employee ID:", m.idInput},
			{"Date:", m.dateInput},
		}))
		return b.String()
	case reportModeWeekly:
		b.WriteString(m.renderForm("Weekly Report", []formField{
			{"Employee ID:", m.idInput},
			{"Start date:", m.startInput},
			{"End date:", m.endInput},
		}))
		return b.String()
	}

	switch m.showing {
	case reportDaily:
		b.WriteString(m.renderDaily())
	case reportWeekly:
		b.WriteString(m.renderWeekly())
	default:
		b.WriteString(m.styles.StatLabel.Render("Press 'd' for a daily report, 'w' for a weekly report"))
	}

	return b.String()
}

type formField struct {
	label string
	input textinput.Model
}

func (m ReportsModel) renderForm(title string, fields []formField) string {
	var b strings.Builder
	b.WriteString(m.styles.InputLabel.Render(title))
	b.WriteString("\n\n")
	for _, f := range fields {
		b.WriteString(m.styles.InputLabel.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.StatusHelp.Render("Tab to switch field, Enter to fetch, Esc to cancel"))
	return b.String()
}

// renderDaily renders the daily report block with its time-block table in
// the order the backend supplied.
func (m ReportsModel) renderDaily() string {
	r := m.daily
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Daily Attendance Report"))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Date:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(r.Date))
	b.WriteString("\n\n")

	b.WriteString(m.styles.InputLabel.Render("Time Analysis"))
	b.WriteString("\n")
	b.WriteString(m.renderStatLine("Total Time Inside:", r.FormattedTime))
	b.WriteString(m.renderStatLine("Total Hours:", formatTotal(r.TotalHours)))
	b.WriteString(m.renderStatLine("Total Minutes:", formatTotal(r.TotalMinutes)))
	b.WriteString("\n")

	headers := []string{"Entry Time", "Exit Time", "Duration"}
	rows := make([][]string, len(r.Details))
	for i, d := range r.Details {
		rows[i] = []string{d.Entry, d.Exit, d.Duration + " hours"}
	}
	b.WriteString(m.renderReportTable(headers, rows))
	return b.String()
}

// renderWeekly renders the weekly report block with one row per day in
// backend order.
func (m ReportsModel) renderWeekly() string {
	r := m.weekly
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Weekly Attendance Report"))
	b.WriteString("\n")
	b.WriteString(m.renderStatLine("Total Time:", r.TotalTime))
	b.WriteString("\n")

	headers := []string{"Date", "Time Inside"}
	rows := make([][]string, len(r.DailyBreakdown))
	for i, d := range r.DailyBreakdown {
		rows[i] = []string{d.Date, d.FormattedTime}
	}
	b.WriteString(m.renderReportTable(headers, rows))
	return b.String()
}

func (m ReportsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}

func (m ReportsModel) renderReportTable(headers []string, rows [][]string) string {
	widths := colWidths(headers, rows)

	var b strings.Builder
	var head []string
	for i, h := range headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(head, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			cells = append(cells, pad(cell, widths[i]))
		}
		b.WriteString(m.styles.TableRow.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *ReportsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m ReportsModel) IsInputMode() bool {
	return m.mode != reportModeNormal
}

// fetchDaily creates a command that loads a daily report under the given
// sequence number.
func (m ReportsModel) fetchDaily(seq int, id, date string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		report, err := client.DailyReport(context.Background(), id, date)
		return dailyReportMsg{seq: seq, report: report, err: err}
	}
}

// fetchWeekly creates a command that loads a weekly report under the
// given sequence number.
func (m ReportsModel) fetchWeekly(seq int, id, start, end string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		report, err := client.WeeklyReport(context.Background(), id, start, end)
		return weeklyReportMsg{seq: seq, report: report, err: err}
	}
}
