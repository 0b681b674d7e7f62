package history

import (
	"context"
	"time"
)

// StaticSource serves a fixed, newest-first history. It backs --dry-run.
type StaticSource []RawCommit

// Commits ignores branch and since and walks the fixed history
func (s StaticSource) Commits(_ context.Context, _ string, _ time.Time) (RawIterator, error) {
	return &sliceIterator{items: s}, nil
}

type sliceIterator struct {
	items []RawCommit
	pos   int
}

func (it *sliceIterator) Next(ctx context.Context) (*RawCommit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if it.pos >= len(it.items) {
		return nil, ErrNoMoreCommits
	}
	c := it.items[it.pos]
	it.pos++
	return &c, nil
}

// SampleHistory returns a canned history for dry runs
func SampleHistory() StaticSource {
	return StaticSource{
		{SHA: "9f3c2a1d4b5e6f708192a3b4c5d6e7f809a1b2c3", Message: "Update .NET 9 nightly images (#6120)", Login: "dotnet-bot", AuthorName: ".NET Bot"},
		{SHA: "8e2b1c0d3a4f5e6d7c8b9a0f1e2d3c4b5a697887", Message: "Fix arm32 test matrix\n\nThe matrix skipped alpine.", AuthorName: "Jane Doe"},
		{SHA: "7d1a0b9c8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3b", Message: "Bump test dependencies (#6114) (#6101)", Login: "renovate"},
		{SHA: "6c0f9e8d7c6b5a4f3e2d1c0b9a8f7e6d5c4b3a29", Message: "Add Azure Linux 3.0 distroless images (#6109)", Login: "mthalman", AuthorName: "Matt Thalman"},
		{SHA: "5b9e8d7c6b5a4f3e2d1c0b9a8f7e6d5c4b3a2918", Message: "Refresh readmes", AuthorName: "Docker Bot"},
	}
}
