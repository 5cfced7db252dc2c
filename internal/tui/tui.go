// Package tui provides the interactive terminal dashboard for attendash.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/config"
	"github.com/attendash/attendash/internal/timeutil"
	"github.com/attendash/attendash/internal/tui/ui"
	"github.com/attendash/attendash/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabDirectory Tab = iota
	TabReports
	TabRegister
	TabStatus
)

var tabNames = []string{"Directory", "Reports", "Register", "Status"}

// noticeTimeout is how long a notice stays visible in the alert region.
const noticeTimeout = 3 * time.Second

// Model is the root dashboard model
type Model struct {
	client *api.Client
	cfg    config.Config

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	now       time.Time

	// Alert region. noticeSeq stamps each displayed notice so that only
	// the hide timer belonging to the latest one can clear it: a newer
	// notice overwrites the current one and invalidates older timers.
	notice      ui.NoticeMsg
	noticeSeq   int
	noticeShown bool

	// View models
	directoryView views.DirectoryModel
	reportsView   views.ReportsModel
	registerView  views.RegisterModel
	statusView    views.StatusModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new dashboard model
func New(client *api.Client, cfg config.Config) Model {
	themeProvider := ui.NewThemeProvider(cfg.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		client:        client,
		cfg:           cfg,
		activeTab:     TabDirectory,
		now:           time.Now(),
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		directoryView: views.NewDirectoryModel(client, cfg, styles, keys),
		reportsView:   views.NewReportsModel(client, styles, keys),
		registerView:  views.NewRegisterModel(client, styles, keys),
		statusView:    views.NewStatusModel(client, styles, keys),
	}
}

// clockTickMsg drives the clock region once per second
type clockTickMsg time.Time

// noticeExpiredMsg hides the notice stamped with the same sequence
type noticeExpiredMsg struct {
	seq int
}

// Init implements tea.Model. Views are initialized once here; the
// directory poll chain must not be restarted on tab switches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.directoryView.Init(),
		m.reportsView.Init(),
		m.registerView.Init(),
		m.statusView.Init(),
		m.tickClock(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabDirectory
			return m, nil

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabReports
			return m, nil

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabRegister
			return m, nil

		case key.Matches(msg, m.keys.Tab4) && !capturing:
			m.activeTab = TabStatus
			return m, nil

		case key.Matches(msg, m.keys.NextTheme) && !capturing:
			return m.applyTheme(m.themeProvider.NextTheme())

		case key.Matches(msg, m.keys.PrevTheme) && !capturing:
			return m.applyTheme(m.themeProvider.PreviousTheme())
		}

		// Key events go to the active view only.
		return m.updateActiveView(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 6 // tabs, clock, notice and status bar
		m.directoryView.SetSize(m.width, contentHeight)
		m.reportsView.SetSize(m.width, contentHeight)
		m.registerView.SetSize(m.width, contentHeight)
		m.statusView.SetSize(m.width, contentHeight)
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, m.tickClock()

	case ui.NoticeMsg:
		// Last write wins: replace whatever is visible and restart the
		// hide timer.
		m.notice = msg
		m.noticeSeq++
		m.noticeShown = true
		return m, m.expireNotice(m.noticeSeq)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.noticeShown = false
		}
		return m, nil
	}

	// Everything else (poll ticks, fetch completions, refresh requests)
	// is broadcast so background work survives tab switches.
	return m.broadcast(msg)
}

// updateActiveView routes a message to the active view only.
func (m Model) updateActiveView(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabDirectory:
		m.directoryView, cmd = m.directoryView.Update(msg)
	case TabReports:
		m.reportsView, cmd = m.reportsView.Update(msg)
	case TabRegister:
		m.registerView, cmd = m.registerView.Update(msg)
	case TabStatus:
		m.statusView, cmd = m.statusView.Update(msg)
	}
	return m, cmd
}

// broadcast routes a message to every view.
func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.directoryView, cmd = m.directoryView.Update(msg)
	cmds = append(cmds, cmd)
	m.reportsView, cmd = m.reportsView.Update(msg)
	cmds = append(cmds, cmd)
	m.registerView, cmd = m.registerView.Update(msg)
	cmds = append(cmds, cmd)
	m.statusView, cmd = m.statusView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.styles.Clock.Render(timeutil.Clock(m.now)))
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabDirectory:
		b.WriteString(m.directoryView.View())
	case TabReports:
		b.WriteString(m.reportsView.View())
	case TabRegister:
		b.WriteString(m.registerView.View())
	case TabStatus:
		b.WriteString(m.statusView.View())
	}

	b.WriteString("\n")
	if m.noticeShown {
		b.WriteString(m.styles.NoticeStyle(m.notice.Level).Render(m.notice.Text))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "submit"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabDirectory:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
			parts = append(parts, m.renderKeyHelp("D", "delete all"))
		case TabReports:
			parts = append(parts, m.renderKeyHelp("d", "daily"))
			parts = append(parts, m.renderKeyHelp("w", "weekly"))
		case TabRegister:
			parts = append(parts, m.renderKeyHelp("n", "new"))
		case TabStatus:
			parts = append(parts, m.renderKeyHelp("c", "check"))
		}

		parts = append(parts, m.renderKeyHelp("1-4", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabDirectory:
		return m.directoryView.IsInputMode()
	case TabReports:
		return m.reportsView.IsInputMode()
	case TabRegister:
		return m.registerView.IsInputMode()
	case TabStatus:
		return m.statusView.IsInputMode()
	}
	return false
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  t/T        Cycle themes\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabDirectory:
		help.WriteString(m.styles.StatLabel.Render("Directory:"))
		help.WriteString("\n")
		help.WriteString("  r          Refresh now\n")
		help.WriteString("  D          Delete all users (asks for confirmation)\n")
	case TabReports:
		help.WriteString(m.styles.StatLabel.Render("Reports:"))
		help.WriteString("\n")
		help.WriteString("  d          Fetch a daily report\n")
		help.WriteString("  w          Fetch a weekly report\n")
	case TabRegister:
		help.WriteString(m.styles.StatLabel.Render("Register:"))
		help.WriteString("\n")
		help.WriteString("  n          Open the registration form\n")
	case TabStatus:
		help.WriteString(m.styles.StatLabel.Render("Status:"))
		help.WriteString("\n")
		help.WriteString("  c          Check an employee's status\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// applyTheme restyles the dashboard for the named theme, broadcasts the
// change to every view and persists the choice.
func (m Model) applyTheme(name string) (Model, tea.Cmd) {
	m.styles = m.themeProvider.Styles()
	m.cfg.Theme = name

	themeMsg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
	m.directoryView, _ = m.directoryView.Update(themeMsg)
	m.reportsView, _ = m.reportsView.Update(themeMsg)
	m.registerView, _ = m.registerView.Update(themeMsg)
	m.statusView, _ = m.statusView.Update(themeMsg)

	return m, m.saveThemeConfig(name)
}

// saveThemeConfig saves the theme to the config file. Persistence is
// best-effort: the dashboard keeps running on the new theme either way.
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		path, err := config.GetConfigPath()
		if err != nil {
			return nil
		}
		cfg, err := config.LoadOrDefault(path)
		if err != nil {
			return nil
		}
		cfg.Theme = themeName
		_ = config.Save(path, cfg)
		return nil
	}
}

// tickClock schedules the next clock update.
func (m Model) tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// expireNotice schedules the hide of the notice stamped with seq.
func (m Model) expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Run starts the dashboard
func Run(client *api.Client, cfg config.Config) error {
	model := New(client, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
