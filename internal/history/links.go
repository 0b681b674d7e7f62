package history

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultWebURL is the web host used to build commit and pull request links
const DefaultWebURL = "https://github.com"

// pullRequestRef matches a parenthesized pull request reference like "(#1234)".
// Group 1 is the number.
var pullRequestRef = regexp.MustCompile(`\(#(\d+)\)`)

// Links builds web links for a hosted repository
type Links struct {
	WebURL string
}

func (l Links) base() string {
	if l.WebURL == "" {
		return DefaultWebURL
	}
	return strings.TrimRight(l.WebURL, "/")
}

// Commit returns the web page of a commit
func (l Links) Commit(owner, repo, sha string) string {
	return fmt.Sprintf("%s/%s/%s/commit/%s", l.base(), owner, repo, sha)
}

// PullRequest returns the link of the first pull request referenced in message,
// or fallback unchanged when the message references none. The number is not
// checked against the host.
func (l Links) PullRequest(message, fallback, owner, repo string) string {
	number, ok := PullRequestNumber(message)
	if !ok {
		return fallback
	}
	return fmt.Sprintf("%s/%s/%s/pull/%s", l.base(), owner, repo, number)
}

// PullRequestNumber extracts the digits of the first "(#N)" reference in message
func PullRequestNumber(message string) (string, bool) {
	match := pullRequestRef.FindStringSubmatch(message)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// ResolveAuthor prefers the platform login and falls back to the raw author name
func ResolveAuthor(login, name string) string {
	if login != "" {
		return login
	}
	return name
}

// FirstLine returns the first line of a commit message
func FirstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimRight(line, "\r")
}
