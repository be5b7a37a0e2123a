package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status lines, independent of the menu theme.
// ANSI codes so they follow the terminal's own palette.
const (
	ColorError lipgloss.Color = "1" // Red
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
)
