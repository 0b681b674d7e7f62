package pick

import (
	"strings"

	"github.com/wahlandcase/release-helper/internal/models"
)

const cherryPickCommand = "git cherry-pick"

// Result holds the commits accepted during a session, in review order
type Result struct {
	Selected []models.Commit
}

// Markdown returns one bullet per selected commit: " - {link} - {sha}"
func (r Result) Markdown() string {
	lines := make([]string, 0, len(r.Selected))
	for _, c := range r.Selected {
		lines = append(lines, " - "+c.PullRequestURL+" - "+c.SHA)
	}
	return strings.Join(lines, "\n")
}

// Command returns the git cherry-pick invocation for the selection
func (r Result) Command() string {
	if len(r.Selected) == 0 {
		return cherryPickCommand
	}
	shas := make([]string, len(r.Selected))
	for i, c := range r.Selected {
		shas[i] = c.SHA
	}
	return cherryPickCommand + " " + strings.Join(shas, " ")
}

// Summary returns the markdown list followed by the command instructions
func (r Result) Summary() string {
	var sb strings.Builder
	if md := r.Markdown(); md != "" {
		sb.WriteString(md)
		sb.WriteString("\n\n")
	}
	sb.WriteString("To cherry-pick the selected commits, run the following command:\n")
	sb.WriteString(r.Command())
	sb.WriteString("\n")
	return sb.String()
}
