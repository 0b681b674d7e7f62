package history

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wahlandcase/release-helper/internal/models"
)

// Fetcher resolves the history of one repository into commits
type Fetcher struct {
	source Source
	owner  string
	repo   string
	links  Links
	logger *log.Logger
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithLinks sets the web host used for fallback and pull request links
func WithLinks(l Links) Option {
	return func(f *Fetcher) { f.links = l }
}

// WithLogger sets the logger, nil keeps the silent default
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a Fetcher over source for owner/repo
func NewFetcher(source Source, owner, repo string, opts ...Option) *Fetcher {
	f := &Fetcher{
		source: source,
		owner:  owner,
		repo:   repo,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch starts walking branch from since, newest first, stopping after the
// first commit whose hash starts with untilSHA. That commit is included.
// An empty untilSHA walks the whole window.
func (f *Fetcher) Fetch(ctx context.Context, since time.Time, untilSHA, branch string) (*Iterator, error) {
	f.logger.Debug("fetching history", "owner", f.owner, "repo", f.repo, "branch", branch, "since", since.Format(time.DateOnly), "until", untilSHA)

	raw, err := f.source.Commits(ctx, branch, since)
	if err != nil {
		return nil, asTransportError("listing commits of "+branch, err)
	}

	return &Iterator{
		fetcher:  f,
		raw:      raw,
		untilSHA: untilSHA,
		seen:     mapset.NewThreadUnsafeSet[string](),
	}, nil
}

// Iterator yields resolved commits lazily. It is single-pass.
type Iterator struct {
	fetcher  *Fetcher
	raw      RawIterator
	untilSHA string
	seen     mapset.Set[string]
	done     bool
	boundary bool
}

// Next returns the next commit, or ErrNoMoreCommits once the boundary commit
// has been returned or the source is exhausted.
func (it *Iterator) Next(ctx context.Context) (models.Commit, error) {
	if it.done {
		return models.Commit{}, ErrNoMoreCommits
	}

	for {
		raw, err := it.raw.Next(ctx)
		if errors.Is(err, ErrNoMoreCommits) {
			it.done = true
			return models.Commit{}, ErrNoMoreCommits
		}
		if err != nil {
			it.done = true
			return models.Commit{}, asTransportError("reading commit history", err)
		}

		// Pages can shift when commits land mid-walk; a hash is only emitted once
		if !it.seen.Add(raw.SHA) {
			it.fetcher.logger.Debug("skipping repeated commit", "sha", raw.SHA)
			continue
		}

		commit, err := it.fetcher.resolve(raw)
		if err != nil {
			it.done = true
			return models.Commit{}, err
		}

		if it.untilSHA != "" && commit.HasPrefix(it.untilSHA) {
			it.fetcher.logger.Debug("reached boundary commit", "sha", commit.ShortSHA())
			it.done = true
			it.boundary = true
		}
		return commit, nil
	}
}

// ReachedBoundary reports whether the walk stopped at the boundary commit
func (it *Iterator) ReachedBoundary() bool {
	return it.boundary
}

func (f *Fetcher) resolve(raw *RawCommit) (models.Commit, error) {
	message := FirstLine(raw.Message)
	if message == "" {
		return models.Commit{}, &MalformedCommitDataError{SHA: raw.SHA}
	}

	fallback := raw.HTMLURL
	if fallback == "" {
		fallback = f.links.Commit(f.owner, f.repo, raw.SHA)
	}

	return models.NewCommit(
		raw.SHA,
		message,
		ResolveAuthor(raw.Login, raw.AuthorName),
		f.links.PullRequest(message, fallback, f.owner, f.repo),
	), nil
}

// Collect drains it. Any error discards the commits read so far.
func Collect(ctx context.Context, it *Iterator) ([]models.Commit, error) {
	var commits []models.Commit
	for {
		c, err := it.Next(ctx)
		if errors.Is(err, ErrNoMoreCommits) {
			return commits, nil
		}
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
}

func asTransportError(op string, err error) error {
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	var malformed *MalformedCommitDataError
	if errors.As(err, &malformed) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}
