// Package format renders session status for terminal output.
package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/v4r-tuwien/verefine-bringup/internal/bringup"
)

const (
	windowColWidth  = 8
	nameColWidth    = 16
	panesColWidth   = 6
	commandColWidth = 24

	activeMarker = "*"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Status renders a SessionStatus as a window-per-row table. A missing
// session renders as a single line.
func Status(s bringup.SessionStatus) string {
	if !s.Exists {
		return dimStyle.Render(fmt.Sprintf("session %s does not exist", s.Name)) + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("session %s", s.Name)))
	b.WriteString("\n")

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		windowColWidth, "WINDOW",
		nameColWidth, "NAME",
		panesColWidth, "PANES",
		commandColWidth, "COMMANDS")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, w := range s.Windows {
		b.WriteString(renderWindowRow(w))
		b.WriteString("\n")
	}
	return b.String()
}

func renderWindowRow(w bringup.WindowStatus) string {
	index := fmt.Sprintf("%d", w.Index)
	if w.Active {
		index += activeMarker
	}

	commands := make([]string, 0, len(w.Panes))
	for _, p := range w.Panes {
		commands = append(commands, p.Command)
	}

	row := fmt.Sprintf("%-*s %-*s %-*d %-*s",
		windowColWidth, index,
		nameColWidth, w.Name,
		panesColWidth, len(w.Panes),
		commandColWidth, strings.Join(commands, ", "))

	if w.Active {
		return activeStyle.Render(row)
	}
	return row
}
