// Package history turns a raw branch history into resolved commits, newest
// first, stopping at a boundary commit.
package history

//go:generate mockgen -source=source.go -destination=mock_history/mock_source.go -package=mock_history

import (
	"context"
	"time"
)

// RawCommit is one history item as reported by a Source
type RawCommit struct {
	SHA string
	// Message is the full commit message
	Message string
	// Login is the platform account of the author, empty when none is linked
	Login string
	// AuthorName is the name recorded in the commit metadata
	AuthorName string
	// HTMLURL is the web page of the commit, may be empty
	HTMLURL string
}

// Source provides the history of a branch, newest first
type Source interface {
	// Commits starts iterating the history of branch from since onward.
	// Nothing beyond what the iterator is asked for needs to be loaded.
	Commits(ctx context.Context, branch string, since time.Time) (RawIterator, error)
}

// RawIterator walks raw commits. Next returns ErrNoMoreCommits when exhausted.
type RawIterator interface {
	Next(ctx context.Context) (*RawCommit, error)
}
