package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintHostList writes one "index name ip" line per entry, 1-based, with no
// styling so the output stays easy to grep.
func PrintHostList(w io.Writer, entries []MenuEntry) {
	for i, e := range entries {
		fmt.Fprintf(w, "%-3d %-25s %s\n", i+1, e.Name, e.IP)
	}
}

// RenderConnecting is the line printed just before a session starts.
func RenderConnecting(s Styles, name string) string {
	return s.Question.Render("Connecting to:") + " " + s.Name.Render(name)
}

// RenderFailure formats msg with a red failure symbol.
func RenderFailure(r *lipgloss.Renderer, msg string) string {
	return r.NewStyle().Foreground(ColorError).Render(SymbolFail) + " " + msg
}
