package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/tui/ui"
)

// StatusModel is the model for the single-employee status view.
type StatusModel struct {
	client *api.Client
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width     int
	height    int
	record    *api.StatusRecord
	checkedID string

	// Input state
	inputMode bool
	input     textinput.Model

	// seq is the latest issued status request; older completions are
	// discarded so re-checks cannot render out of order under jitter.
	seq int
}

// NewStatusModel creates a new status view model
func NewStatusModel(client *api.Client, styles ui.Styles, keys ui.KeyMap) StatusModel {
	ti := textinput.New()
	ti.Placeholder = "Employee ID..."
	ti.CharLimit = 40
	ti.Width = 24

	return StatusModel{
		client: client,
		styles: styles,
		keys:   keys,
		input:  ti,
	}
}

// statusMsg is sent when a status check completes
type statusMsg struct {
	seq    int
	id     string
	record *api.StatusRecord
	err    error
}

// Init implements tea.Model
func (m StatusModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}
		if key.Matches(msg, m.keys.Check) {
			m.inputMode = true
			m.input.Focus()
			return m, textinput.Blink
		}

	case statusMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			// Previous status block stays in place.
			return m, notifyFailure(msg.err, "Error checking status: ")
		}
		m.record = msg.record
		m.checkedID = msg.id
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleInputMode handles key events while the ID input is focused. The
// identifier is sent as typed: the backend owns format validation.
func (m StatusModel) handleInputMode(msg tea.KeyMsg) (StatusModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		id := strings.TrimSpace(m.input.Value())
		m.inputMode = false
		m.input.Blur()
		m.seq++
		return m, m.check(m.seq, id)
	case key.Matches(msg, m.keys.Back): // Escape
		m.inputMode = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m StatusModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Employee Status"))
	b.WriteString("\n\n")

	if m.inputMode {
		b.WriteString(m.styles.InputLabel.Render("Employee ID:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatusHelp.Render("Enter to check, Esc to cancel"))
		return b.String()
	}

	if m.record == nil {
		b.WriteString(m.styles.StatLabel.Render("Press 'c' to check an employee's status"))
		return b.String()
	}

	b.WriteString(m.styles.StatLabel.Render("Employee:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.checkedID))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Current Status:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatusStyle(m.record.Status).Render(m.record.Status))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Last Update:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.record.LastUpdate()))
	b.WriteString("\n")

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatusModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m StatusModel) IsInputMode() bool {
	return m.inputMode
}

// check creates a command that fetches one employee's status under the
// given sequence number.
func (m StatusModel) check(seq int, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		record, err := client.EmployeeStatus(context.Background(), id)
		return statusMsg{seq: seq, id: id, record: record, err: err}
	}
}
