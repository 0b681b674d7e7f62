package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/release-helper/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// CommitCard renders message, sha, author and link of a commit
func CommitCard(c models.Commit) string {
	messageStyle := lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	shaStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	authorStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	linkStyle := lipgloss.NewStyle().Foreground(ColorCyan).Underline(true)

	return strings.Join([]string{
		messageStyle.Render(c.Message),
		labelStyle.Render("  sha    ") + shaStyle.Render(c.SHA),
		labelStyle.Render("  author ") + authorStyle.Render(c.Author),
		labelStyle.Render("  link   ") + linkStyle.Render(c.PullRequestURL),
	}, "\n")
}

// CommitList renders commits as cards separated by blank lines
func CommitList(commits []models.Commit) string {
	cards := make([]string, len(commits))
	for i, c := range commits {
		cards[i] = CommitCard(c)
	}
	return strings.Join(cards, "\n\n")
}

// Prompt renders the include question with its key hints
func Prompt() string {
	return fmt.Sprintf("Include this commit? %s  %s",
		KeyBinding("y", "yes", ColorGreen),
		KeyBinding("any other key", "no", ColorRed),
	)
}

// Count renders "N commit(s)" in the given color
func Count(n int, color lipgloss.Color) string {
	noun := "commits"
	if n == 1 {
		noun = "commit"
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d %s", n, noun))
}
