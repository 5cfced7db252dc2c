package ui

import tea "github.com/charmbracelet/bubbletea"

// NoticeLevel classifies a transient notice for styling. The set is open:
// unrecognized levels render with the default notice treatment.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// NoticeMsg asks the root model to display a transient notice in the
// alert region. A new notice immediately replaces the visible one and
// restarts the hide timer.
type NoticeMsg struct {
	Text  string
	Level NoticeLevel
}

// Notify returns a command that raises a notice.
func Notify(text string, level NoticeLevel) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text, Level: level}
	}
}

// RefreshDirectoryMsg asks the directory view to re-fetch immediately,
// outside its regular poll schedule. Raised after mutations such as a
// successful registration or bulk deletion.
type RefreshDirectoryMsg struct{}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
