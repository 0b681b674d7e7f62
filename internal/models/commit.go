package models

// Commit is one resolved commit of a branch history
type Commit struct {
	// SHA is the full commit hash
	SHA string
	// Message is the first line of the commit message
	Message string
	// Author is the platform login, or the raw author name when no account is linked
	Author string
	// PullRequestURL links the pull request referenced by the message, or the commit page
	PullRequestURL string
}

// NewCommit creates a new Commit
func NewCommit(sha, message, author, pullRequestURL string) Commit {
	return Commit{
		SHA:            sha,
		Message:        message,
		Author:         author,
		PullRequestURL: pullRequestURL,
	}
}

// ShortSHA returns the 7 character abbreviated hash
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// HasPrefix reports whether the commit hash starts with prefix (case-sensitive)
func (c Commit) HasPrefix(prefix string) bool {
	return len(c.SHA) >= len(prefix) && c.SHA[:len(prefix)] == prefix
}
