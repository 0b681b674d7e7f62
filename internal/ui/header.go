package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header describes the history being walked, e.g.
// "─── dotnet/dotnet-docker ───" followed by "nightly since 2026-08-17 until 1a2b3c4"
func Header(owner, repo, branch, since, until string, dryRun bool) string {
	branchStyle := lipgloss.NewStyle().Foreground(BranchColor(branch)).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	lines := []string{
		SectionHeader(owner+"/"+repo, ColorCyan),
		fmt.Sprintf("%s %s %s",
			branchStyle.Render(branch),
			mutedStyle.Render("since "+since+" until"),
			lipgloss.NewStyle().Foreground(ColorYellow).Render(until),
		),
	}

	if dryRun {
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN MODE"))
	}

	return strings.Join(lines, "\n")
}
