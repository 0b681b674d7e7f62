package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: terminal environment fixes live in internal/termfix, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// BranchColor picks a color for a branch name: nightly/main are upstream,
// release branches are the cherry-pick targets
func BranchColor(branch string) lipgloss.Color {
	switch {
	case branch == "nightly":
		return ColorMagenta
	case branch == "main" || branch == "master":
		return ColorRed
	case strings.HasPrefix(branch, "release/"):
		return ColorYellow
	default:
		return ColorWhite
	}
}

// DisableColor switches all rendering to plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
