package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultTheme is used when no theme is set or the name is unknown.
const DefaultTheme = "material"

// Theme is a named palette for the menus. Sel* colors apply to the row
// under the cursor.
type Theme struct {
	Name        string
	Description string

	Question lipgloss.Color
	Cursor   lipgloss.Color
	Index    lipgloss.Color
	HostName lipgloss.Color
	IP       lipgloss.Color

	SelCursor lipgloss.Color
	SelIndex  lipgloss.Color
	SelName   lipgloss.Color
	SelIP     lipgloss.Color
}

// themes in display order.
var themes = []Theme{
	{
		Name: "material", Description: "Clean Material Design look (default)",
		Question: "#2196f3", Cursor: "#ff9800", Index: "#aaaaaa", HostName: "#5f87ff", IP: "#87af5f",
		SelCursor: "#ff9800", SelIndex: "#eeeeee", SelName: "#03a9f4", SelIP: "#4caf50",
	},
	{
		Name: "solarized-dark", Description: "Warm Solarized Dark palette",
		Question: "#b58900", Cursor: "#cb4b16", Index: "#93a1a1", HostName: "#268bd2", IP: "#859900",
		SelCursor: "#cb4b16", SelIndex: "#eee8d5", SelName: "#2aa198", SelIP: "#859900",
	},
	{
		Name: "nord", Description: "Cool blue Nord colors",
		Question: "#88c0d0", Cursor: "#81a1c1", Index: "#4c566a", HostName: "#88c0d0", IP: "#a3be8c",
		SelCursor: "#81a1c1", SelIndex: "#eceff4", SelName: "#8fbcbb", SelIP: "#a3be8c",
	},
	{
		Name: "dracula", Description: "High-contrast neon-gothic look",
		Question: "#bd93f9", Cursor: "#ff79c6", Index: "#6272a4", HostName: "#bd93f9", IP: "#50fa7b",
		SelCursor: "#ff79c6", SelIndex: "#f8f8f2", SelName: "#bd93f9", SelIP: "#50fa7b",
	},
	{
		Name: "gruvbox", Description: "Earthy warm Gruvbox scheme",
		Question: "#fabd2f", Cursor: "#fabd2f", Index: "#665c54", HostName: "#fabd2f", IP: "#b8bb26",
		SelCursor: "#fabd2f", SelIndex: "#ebdbb2", SelName: "#d79921", SelIP: "#b8bb26",
	},
	{
		Name: "neon", Description: "Vibrant cyberpunk neon colors",
		Question: "#00ffff", Cursor: "#ff0090", Index: "#551a8b", HostName: "#00ffff", IP: "#39ff14",
		SelCursor: "#ff0090", SelIndex: "#fffb00", SelName: "#00b3ff", SelIP: "#39ff14",
	},
	{
		Name: "minimal", Description: "Subtle clean minimalistic theme",
		Question: "#00afff", Cursor: "#00afff", Index: "#666666", HostName: "#00afff", IP: "#00d75f",
		SelCursor: "#00afff", SelIndex: "#999999", SelName: "#5f87ff", SelIP: "#00d75f",
	},
}

// Themes returns every built-in theme in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme finds a theme by case-insensitive name. Unknown or empty names
// return the default theme and false.
func LookupTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	for _, t := range themes {
		if t.Name == DefaultTheme {
			return t, false
		}
	}
	return themes[0], false
}

// Styles are a theme's colors bound to one renderer.
type Styles struct {
	Question lipgloss.Style
	Cursor   lipgloss.Style
	Index    lipgloss.Style
	Name     lipgloss.Style
	IP       lipgloss.Style

	SelCursor lipgloss.Style
	SelIndex  lipgloss.Style
	SelName   lipgloss.Style
	SelIP     lipgloss.Style
}

// NewStyles builds the styles for t. Everything is bold except the
// unselected index column.
func NewStyles(t Theme, r *lipgloss.Renderer) Styles {
	fg := func(c lipgloss.Color, bold bool) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(bold)
	}
	return Styles{
		Question:  fg(t.Question, true),
		Cursor:    fg(t.Cursor, true),
		Index:     fg(t.Index, false),
		Name:      fg(t.HostName, true),
		IP:        fg(t.IP, true),
		SelCursor: fg(t.SelCursor, true),
		SelIndex:  fg(t.SelIndex, true),
		SelName:   fg(t.SelName, true),
		SelIP:     fg(t.SelIP, true),
	}
}

// NewRenderer returns a renderer for w that honors NO_COLOR.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// PrintThemes writes the theme catalog with activation instructions.
func PrintThemes(w io.Writer, envVar string) {
	fmt.Fprintf(w, "\nAvailable themes (set via %s or --theme):\n\n", envVar)
	for _, t := range themes {
		fmt.Fprintf(w, "  %-15s - %s\n", t.Name, t.Description)
	}
	fmt.Fprintf(w, "\nTo activate a theme:\n\n  export %s=<name>\n\n", envVar)
	fmt.Fprintf(w, "Example:\n\n  export %s=nord\n\n", envVar)
}
