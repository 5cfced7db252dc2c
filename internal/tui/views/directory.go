package views

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/config"
	"github.com/attendash/attendash/internal/tui/ui"
)

// DirectoryModel is the model for the user directory view. It polls the
// backend on a fixed interval and re-renders the full table from each
// successful response; on failure the previous table is kept.
type DirectoryModel struct {
	client *api.Client
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	users   []api.User
	fetched bool

	// feedURL is bound once at construction; empty means no live feed.
	feedURL      string
	pollInterval time.Duration

	// confirming is the pending delete-all confirmation
	confirming bool

	// seq is the latest issued directory request. Responses carrying an
	// older sequence are discarded, so overlapping polls cannot render
	// out of order.
	seq int
}

// NewDirectoryModel creates a new directory view model
func NewDirectoryModel(client *api.Client, cfg config.Config, styles ui.Styles, keys ui.KeyMap) DirectoryModel {
	feedURL := ""
	if cfg.ShowLiveFeed {
		feedURL = client.FeedURL()
	}
	return DirectoryModel{
		client:       client,
		styles:       styles,
		keys:         keys,
		feedURL:      feedURL,
		pollInterval: cfg.PollInterval(),
	}
}

// directoryMsg is sent when a directory fetch completes
type directoryMsg struct {
	seq   int
	users []api.User
	err   error
}

// pollTickMsg drives the recurring directory poll
type pollTickMsg time.Time

// purgeDoneMsg is sent when a delete-all request completes
type purgeDoneMsg struct {
	err error
}

// Init implements tea.Model. The first poll fires immediately; every tick
// re-arms the next one.
func (m DirectoryModel) Init() tea.Cmd {
	return func() tea.Msg {
		return pollTickMsg(time.Now())
	}
}

// Update implements tea.Model
func (m DirectoryModel) Update(msg tea.Msg) (DirectoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmMode(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.seq++
			return m, m.fetch(m.seq)
		case key.Matches(msg, m.keys.DeleteAll):
			// The confirmation is the only gate; purging must stay
			// reachable even when the directory could not be fetched.
			m.confirming = true
			return m, nil
		}

	case pollTickMsg:
		m.seq++
		return m, tea.Batch(m.fetch(m.seq), m.nextTick())

	case ui.RefreshDirectoryMsg:
		m.seq++
		return m, m.fetch(m.seq)

	case directoryMsg:
		if msg.seq != m.seq {
			// A newer request has been issued since; drop this response.
			return m, nil
		}
		if msg.err != nil {
			// Stale data beats a blank table on transient failure.
			return m, ui.Notify("Error fetching users: "+msg.err.Error(), ui.NoticeError)
		}
		m.users = msg.users
		m.fetched = true
		return m, nil

	case purgeDoneMsg:
		if msg.err != nil {
			return m, notifyFailure(msg.err, "Error deleting users: ")
		}
		m.seq++
		return m, tea.Batch(
			ui.Notify("All users deleted successfully", ui.NoticeSuccess),
			m.fetch(m.seq),
		)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleConfirmMode handles key events while the delete-all confirmation
// is pending. Declining is silent: no request, no notice.
func (m DirectoryModel) handleConfirmMode(msg tea.KeyMsg) (DirectoryModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		return m, m.purge()
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

// View implements tea.Model
func (m DirectoryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Registered Users"))
	b.WriteString("\n")

	if m.feedURL != "" {
		b.WriteString(m.styles.InputLabel.Render("Live feed: "))
		b.WriteString(m.styles.FeedLink.Render(m.feedURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(m.styles.Dialog.Render(
			"Are you sure you want to delete all users?\n" +
				"This action cannot be undone.\n\n" +
				"y: delete everything    n/esc: cancel"))
		return b.String()
	}

	// Until a fetch has succeeded the directory contents are unknown;
	// an empty-directory claim would misreport a failed first poll.
	if !m.fetched {
		b.WriteString("Loading...")
		return b.String()
	}

	if len(m.users) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No users registered"))
		return b.String()
	}

	b.WriteString(m.renderTable())
	return b.String()
}

// renderTable renders the directory rows in backend order.
func (m DirectoryModel) renderTable() string {
	headers := []string{"ID", "Name", "Current Status", "Last Update"}
	rows := make([][]string, len(m.users))
	for i, u := range m.users {
		rows[i] = []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Status.Status,
			u.Status.LastUpdate(),
		}
	}
	widths := colWidths(headers, rows)

	var b strings.Builder
	var head []string
	for i, h := range headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(head, "  ")))
	b.WriteString("\n")

	for i, row := range rows {
		statusStyle := m.styles.StatusStyle(m.users[i].Status.Status)
		b.WriteString(m.styles.TableRow.Render(pad(row[0], widths[0]) + "  " + pad(row[1], widths[1]) + "  "))
		b.WriteString(statusStyle.Render(pad(row[2], widths[2])))
		b.WriteString(m.styles.TableRow.Render("  " + pad(row[3], widths[3])))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *DirectoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the delete-all confirmation is pending
func (m DirectoryModel) IsInputMode() bool {
	return m.confirming
}

// Users returns the currently rendered directory rows.
func (m DirectoryModel) Users() []api.User {
	return m.users
}

// fetch creates a command that loads the directory under the given
// sequence number.
func (m DirectoryModel) fetch(seq int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		users, err := client.ListUsers(context.Background())
		return directoryMsg{seq: seq, users: users, err: err}
	}
}

// purge creates a command that deletes all users.
func (m DirectoryModel) purge() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return purgeDoneMsg{err: client.DeleteAllUsers(context.Background())}
	}
}

// nextTick schedules the next directory poll.
func (m DirectoryModel) nextTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
