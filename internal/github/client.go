package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	gh "github.com/google/go-github/v68/github"

	"github.com/wahlandcase/release-helper/internal/history"
)

const (
	defaultPerPage = 100
	maxPerPage     = 100
)

// Options configures a Client
type Options struct {
	Owner string
	Repo  string
	// APIURL overrides the REST endpoint, e.g. "https://ghe.example.com/api/v3/"
	APIURL     string
	PerPage    int
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client reads branch histories from the GitHub REST API. It implements history.Source.
type Client struct {
	gh      *gh.Client
	owner   string
	repo    string
	perPage int
	logger  *log.Logger
}

// NewClient creates a client authenticated with the first token creds yields.
// Without any token the client stays anonymous, which is enough for public repos.
func NewClient(ctx context.Context, creds CredentialProvider, opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	client := gh.NewClient(opts.HTTPClient)

	if creds != nil {
		token, err := creds.Token(ctx)
		switch {
		case errors.Is(err, ErrNoCredentials):
			logger.Warn("no GitHub token found, using anonymous access (60 requests/hour)")
		case err != nil:
			return nil, fmt.Errorf("loading GitHub token: %w", err)
		default:
			client = client.WithAuthToken(token)
		}
	}

	if opts.APIURL != "" {
		base, err := url.Parse(strings.TrimRight(opts.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", opts.APIURL, err)
		}
		client.BaseURL = base
	}

	perPage := opts.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	return &Client{
		gh:      client,
		owner:   opts.Owner,
		repo:    opts.Repo,
		perPage: perPage,
		logger:  logger,
	}, nil
}

// Commits returns a lazy iterator over the history of branch. Pages are
// requested only when the previous one has been consumed.
func (c *Client) Commits(_ context.Context, branch string, since time.Time) (history.RawIterator, error) {
	return &commitPager{client: c, branch: branch, since: since, page: 1}, nil
}

type commitPager struct {
	client *Client
	branch string
	since  time.Time
	// page is the next page to request, 0 once the last page was loaded
	page int
	buf  []*gh.RepositoryCommit
}

func (p *commitPager) Next(ctx context.Context) (*history.RawCommit, error) {
	for len(p.buf) == 0 {
		if p.page == 0 {
			return nil, history.ErrNoMoreCommits
		}
		if err := p.load(ctx); err != nil {
			return nil, err
		}
	}

	rc := p.buf[0]
	p.buf = p.buf[1:]
	return toRawCommit(rc), nil
}

func (p *commitPager) load(ctx context.Context) error {
	c := p.client
	c.logger.Debug("requesting commits", "repo", c.owner+"/"+c.repo, "branch", p.branch, "page", p.page)

	commits, resp, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, &gh.CommitsListOptions{
		SHA:   p.branch,
		Since: p.since,
		ListOptions: gh.ListOptions{
			Page:    p.page,
			PerPage: c.perPage,
		},
	})
	if err != nil {
		return classify(fmt.Sprintf("listing commits of %s/%s@%s", c.owner, c.repo, p.branch), err)
	}

	p.buf = commits
	p.page = 0
	if resp != nil {
		p.page = resp.NextPage
	}
	return nil
}

func toRawCommit(rc *gh.RepositoryCommit) *history.RawCommit {
	return &history.RawCommit{
		SHA:        rc.GetSHA(),
		Message:    rc.GetCommit().GetMessage(),
		Login:      rc.GetAuthor().GetLogin(),
		AuthorName: rc.GetCommit().GetAuthor().GetName(),
		HTMLURL:    rc.GetHTMLURL(),
	}
}

// classify wraps a go-github error, flagging rejected credentials
func classify(op string, err error) error {
	te := &history.TransportError{Op: op, Err: err}

	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	var respErr *gh.ErrorResponse
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		// rate limits are not credential problems
	case errors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			te.Auth = true
		}
	}
	return te
}

// LatestRelease returns the tag and page of the newest published release of
// owner/repo. A repository without releases yields an empty tag.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (tag, htmlURL string, err error) {
	c.logger.Debug("requesting latest release", "repo", owner+"/"+repo)

	rel, _, err := c.gh.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		var respErr *gh.ErrorResponse
		if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
			return "", "", nil
		}
		return "", "", classify(fmt.Sprintf("fetching latest release of %s/%s", owner, repo), err)
	}
	return rel.GetTagName(), rel.GetHTMLURL(), nil
}
