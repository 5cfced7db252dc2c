package views

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attendash/attendash/internal/api"
	"github.com/attendash/attendash/internal/tui/ui"
)

// notifyFailure raises an error notice for a failed backend call.
// Server-reported failures keep the operation-specific prefix and the
// server's own message; anything else surfaces as a network error.
func notifyFailure(err error, prefix string) tea.Cmd {
	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		return ui.Notify(prefix+srvErr.Message, ui.NoticeError)
	}
	return ui.Notify("Network error: "+err.Error(), ui.NoticeError)
}

// colWidths returns, per column, the widest cell including the header.
func colWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// pad left-aligns s in a field of width w.
func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}

// formatTotal renders a report total as the backend sent it, without
// forcing a decimal point onto whole numbers.
func formatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
