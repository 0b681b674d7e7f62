package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/wahlandcase/release-helper/internal/history"
)

// GitError provides context for failures reading a local repository
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// BranchNotFoundError indicates a branch exists neither on origin nor locally
type BranchNotFoundError struct {
	Branches []string
}

func (e *BranchNotFoundError) Error() string {
	return "Branch not found: " + strings.Join(e.Branches, ", ")
}

// LocalSource reads branch histories from a clone on disk. It implements history.Source.
type LocalSource struct {
	repo *git.Repository
}

// OpenLocal opens the repository at path
func OpenLocal(path string) (*LocalSource, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &GitError{Command: "open " + path, Output: err.Error()}
	}
	return &LocalSource{repo: repo}, nil
}

// Commits walks branch from its tip, newest first, ending at the first commit
// older than since.
// The remote-tracking branch of origin is preferred over a local branch.
func (s *LocalSource) Commits(_ context.Context, branch string, since time.Time) (history.RawIterator, error) {
	hash, err := s.resolveBranch(branch)
	if err != nil {
		return nil, err
	}

	iter, err := s.repo.Log(&git.LogOptions{From: hash})
	if err != nil {
		return nil, &GitError{Command: "log " + branch, Output: err.Error()}
	}
	return &localIterator{iter: iter, since: since}, nil
}

func (s *LocalSource) resolveBranch(branch string) (plumbing.Hash, error) {
	names := []plumbing.ReferenceName{
		plumbing.NewRemoteReferenceName("origin", branch),
		plumbing.NewBranchReferenceName(branch),
	}
	for _, name := range names {
		ref, err := s.repo.Reference(name, true)
		if err == nil {
			return ref.Hash(), nil
		}
	}

	// Tags and raw hashes
	hash, err := s.repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return plumbing.ZeroHash, &BranchNotFoundError{Branches: []string{branch}}
	}
	return *hash, nil
}

// HasBranch checks if a branch exists in the repository
func (s *LocalSource) HasBranch(branch string) bool {
	_, err := s.resolveBranch(branch)
	return err == nil
}

// Coordinates returns owner and repo parsed from the origin remote
func (s *LocalSource) Coordinates() (owner, repo string, err error) {
	remote, err := s.repo.Remote("origin")
	if err != nil {
		return "", "", fmt.Errorf("cannot detect repo: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", errors.New("cannot detect repo: origin has no URL")
	}
	return ParseRemoteURL(urls[0])
}

type localIterator struct {
	iter  object.CommitIter
	since time.Time
	done  bool
}

func (it *localIterator) Next(ctx context.Context) (*history.RawCommit, error) {
	if it.done {
		return nil, history.ErrNoMoreCommits
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := it.iter.Next()
	if errors.Is(err, io.EOF) {
		it.finish()
		return nil, history.ErrNoMoreCommits
	}
	if err != nil {
		return nil, &GitError{Command: "log", Output: err.Error()}
	}

	// History is linear, so everything after this is older too
	if c.Committer.When.Before(it.since) {
		it.finish()
		return nil, history.ErrNoMoreCommits
	}

	return &history.RawCommit{
		SHA:        c.Hash.String(),
		Message:    c.Message,
		AuthorName: c.Author.Name,
	}, nil
}

func (it *localIterator) finish() {
	it.done = true
	it.iter.Close()
}

var (
	httpsRemoteRe = regexp.MustCompile(`https?://[^/]+/([^/]+)/([^/.\s]+)`)
	sshRemoteRe   = regexp.MustCompile(`[^@]+@[^:]+:([^/]+)/([^/.\s]+)`)
)

// ParseRemoteURL extracts owner/repo from a git remote URL
func ParseRemoteURL(url string) (owner, repo string, err error) {
	url = strings.TrimSuffix(url, ".git")

	if m := httpsRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	if m := sshRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	return "", "", fmt.Errorf("cannot parse owner/repo from remote URL: %s", url)
}
