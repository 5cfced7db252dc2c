package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the dashboard
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style
	Clock     lipgloss.Style
	FeedLink  lipgloss.Style

	// Directory table
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style

	// Attendance status cells
	StatusIn      lipgloss.Style
	StatusOut     lipgloss.Style
	StatusUnknown lipgloss.Style
	StatusPlain   lipgloss.Style

	// Report blocks
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Input
	InputLabel lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Notices
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Notice  lipgloss.Style
}

// StatusStyle maps an attendance status value to its cell style. The set
// is open: values the backend is known to send get a dedicated style,
// anything else renders unstyled rather than leaking into presentation.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "entry", "in":
		return s.StatusIn
	case "exit", "out":
		return s.StatusOut
	case "unknown":
		return s.StatusUnknown
	default:
		return s.StatusPlain
	}
}

// NoticeStyle maps a notice level to its style. Unrecognized levels get
// the default notice treatment.
func (s Styles) NoticeStyle(level NoticeLevel) lipgloss.Style {
	switch level {
	case NoticeSuccess:
		return s.Success
	case NoticeWarning:
		return s.Warning
	case NoticeError:
		return s.Error
	default:
		return s.Notice
	}
}

// DefaultStyles returns the default dashboard styles
func DefaultStyles() Styles {
	return buildStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),  // Green
		warning:   lipgloss.Color("214"), // Orange
		errColor:  lipgloss.Color("196"), // Red
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry, mapping theme colors to semantic UI elements.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		errColor:  r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
	})
}

type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	errColor  lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
}

func buildStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),
		Clock: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		FeedLink: lipgloss.NewStyle().
			Foreground(p.muted).
			Underline(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		TableRow: lipgloss.NewStyle().
			Foreground(p.fg),

		StatusIn: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusOut: lipgloss.NewStyle().
			Foreground(p.errColor).
			Bold(true),
		StatusUnknown: lipgloss.NewStyle().
			Foreground(p.muted),
		StatusPlain: lipgloss.NewStyle(),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		InputLabel: lipgloss.NewStyle().
			Foreground(p.muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.errColor).
			Padding(1, 2),

		Error: lipgloss.NewStyle().
			Foreground(p.errColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(p.fg),
	}
}
