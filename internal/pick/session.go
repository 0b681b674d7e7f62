// Package pick walks a chronological list of commits, asking for each one
// whether it belongs in the cherry-pick set.
package pick

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wahlandcase/release-helper/internal/models"
)

// KeyReader reads a single keystroke. io.EOF means no character was available.
type KeyReader interface {
	ReadKey() (rune, error)
}

// ErrInterrupted is returned by key readers when the user aborts with Ctrl+C
var ErrInterrupted = errors.New("interrupted")

// InputError aborts a session when the key reader fails
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "reading response: " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// State of a Session
type State int

const (
	StateIdle State = iota
	StatePresenting
	StateAwaitingResponse
	StateAccepted
	StateRejected
	StateFinished
)

func (s State) String() string {
	names := []string{
		"Idle",
		"Presenting",
		"AwaitingResponse",
		"Accepted",
		"Rejected",
		"Finished",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Renderer formats a commit for review
type Renderer func(c models.Commit) string

// Session is one review pass
type Session struct {
	keys   KeyReader
	out    io.Writer
	render Renderer
	prompt string
	logger *log.Logger

	state    State
	selected []models.Commit
}

// Option configures a Session
type Option func(*Session)

// WithRenderer sets how each commit is presented
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.render = r }
}

// WithPrompt sets the question printed after each commit
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithLogger sets the logger, nil keeps the silent default
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a Session reading keys from keys and presenting to out
func NewSession(keys KeyReader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		keys:   keys,
		out:    out,
		render: PlainCommit,
		prompt: "Include this commit? [y/N]",
		logger: log.New(io.Discard),
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Run presents commits in the given order, oldest first. A failed key read
// aborts the session without a result.
func (s *Session) Run(commits []models.Commit) (*Result, error) {
	for i, c := range commits {
		s.state = StatePresenting
		fmt.Fprintf(s.out, "\n[%d/%d]\n%s\n%s\n", i+1, len(commits), s.render(c), s.prompt)

		s.state = StateAwaitingResponse
		key, err := s.keys.ReadKey()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &InputError{Err: err}
		}

		if err == nil && Accepts(key) {
			s.state = StateAccepted
			s.selected = append(s.selected, c)
			s.logger.Debug("accepted", "sha", c.SHA)
		} else {
			s.state = StateRejected
			s.logger.Debug("rejected", "sha", c.SHA)
		}
	}

	s.state = StateFinished
	return &Result{Selected: s.selected}, nil
}

// Accepts reports whether key means "yes"
func Accepts(key rune) bool {
	return key == 'y' || key == 'Y'
}

// PlainCommit renders a commit without styling
func PlainCommit(c models.Commit) string {
	return strings.Join([]string{
		c.Message,
		"  sha:    " + c.SHA,
		"  author: " + c.Author,
		"  link:   " + c.PullRequestURL,
	}, "\n")
}

// Chronological returns commits in reverse order, turning a newest-first
// listing into the review order
func Chronological(commits []models.Commit) []models.Commit {
	out := make([]models.Commit, len(commits))
	for i, c := range commits {
		out[len(commits)-1-i] = c
	}
	return out
}
