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

// RegisterModel is the model for the employee registration view.
type RegisterModel struct {
	client *api.Client
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width  int
	height int

	// Input state
	formMode  bool
	nameInput textinput.Model
	idInput   textinput.Model
	focused   int // 0 = name, 1 = employee ID
}

// NewRegisterModel creates a new registration view model
func NewRegisterModel(client *api.Client, styles ui.Styles, keys ui.KeyMap) RegisterModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Full name..."
	nameInput.CharLimit = 100
	nameInput.Width = 40

	idInput := textinput.New()
	idInput.Placeholder = "Employee ID..."
	idInput.CharLimit = 40
	idInput.Width = 24

	return RegisterModel{
		client:    client,
		styles:    styles,
		keys:      keys,
		nameInput: nameInput,
		idInput:   idInput,
	}
}

// registerDoneMsg is sent when a registration request completes
type registerDoneMsg struct {
	err error
}

// Init implements tea.Model
func (m RegisterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.formMode {
			return m.handleFormMode(msg)
		}
		if key.Matches(msg, m.keys.New) {
			m.formMode = true
			m.focused = 0
			m.idInput.Blur()
			m.nameInput.Focus()
			return m, textinput.Blink
		}

	case registerDoneMsg:
		if msg.err != nil {
			// Form values survive a failed submission for retry.
			return m, notifyFailure(msg.err, "Registration failed: ")
		}
		m.nameInput.SetValue("")
		m.idInput.SetValue("")
		return m, tea.Batch(
			ui.Notify("Employee registered successfully!", ui.NoticeSuccess),
			func() tea.Msg { return ui.RefreshDirectoryMsg{} },
		)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleFormMode handles key events while the registration form is open.
// Both fields must be present before any request is made; an empty field
// aborts locally with a warning.
func (m RegisterModel) handleFormMode(msg tea.KeyMsg) (RegisterModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		name := strings.TrimSpace(m.nameInput.Value())
		id := strings.TrimSpace(m.idInput.Value())
		if name == "" || id == "" {
			return m, ui.Notify("Please fill in all fields", ui.NoticeWarning)
		}
		m.formMode = false
		m.nameInput.Blur()
		m.idInput.Blur()
		return m, m.submit(name, id)
	case key.Matches(msg, m.keys.Back): // Escape
		m.formMode = false
		m.nameInput.Blur()
		m.idInput.Blur()
		return m, nil
	case msg.String() == "tab":
		if m.focused == 0 {
			m.focused = 1
			m.nameInput.Blur()
			m.idInput.Focus()
		} else {
			m.focused = 0
			m.idInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.idInput, cmd = m.idInput.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Register Employee"))
	b.WriteString("\n\n")

	if !m.formMode {
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to register a new employee"))
		return b.String()
	}

	b.WriteString(m.styles.InputLabel.Render("Name:"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.InputLabel.Render("Employee ID:"))
	b.WriteString("\n")
	b.WriteString(m.idInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusHelp.Render("Tab to switch field, Enter to submit, Esc to cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *RegisterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m RegisterModel) IsInputMode() bool {
	return m.formMode
}

// FormValues returns the current form contents.
func (m RegisterModel) FormValues() (name, id string) {
	return m.nameInput.Value(), m.idInput.Value()
}

// submit creates a command that registers the employee.
func (m RegisterModel) submit(name, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return registerDoneMsg{err: client.Register(context.Background(), name, id)}
	}
}
