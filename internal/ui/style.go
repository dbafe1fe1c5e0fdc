// Package ui holds terminal formatting shared by the CLI and the TUI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 80

// ColorEnabled reports whether stdout should receive ANSI styling.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Colorize renders text in the hex colour when styling is enabled. An empty
// colour leaves text unchanged.
func Colorize(text, hex string) string {
	if hex == "" || !ColorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(text)
}

// Bold renders text in bold when styling is enabled.
func Bold(text string) string {
	if !ColorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// TerminalWidth returns the width of stdout, or 80 when it is not a
// terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
