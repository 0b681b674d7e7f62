// Package tty reads single keystroke answers from the terminal
package tty

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wahlandcase/release-helper/internal/pick"
)

// Open returns a key reader for in. Terminals are read one keystroke at a
// time in raw mode; anything else (pipes, files) is read one line per answer.
func Open(in *os.File, out io.Writer) pick.KeyReader {
	if term.IsTerminal(int(in.Fd())) {
		return &TerminalKeys{in: in, out: out}
	}
	return NewStreamKeys(in)
}

// TerminalKeys reads one key per call by running a tiny bubbletea program
type TerminalKeys struct {
	in  io.Reader
	out io.Writer
}

// ReadKey blocks until a key is pressed
func (k *TerminalKeys) ReadKey() (rune, error) {
	p := tea.NewProgram(keyPrompt{}, tea.WithInput(k.in), tea.WithOutput(k.out))
	final, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := final.(keyPrompt)
	if !ok || !m.done {
		return 0, io.EOF
	}
	if m.interrupted {
		return 0, pick.ErrInterrupted
	}
	return m.key, nil
}

// keyPrompt quits on the first key press
type keyPrompt struct {
	key         rune
	done        bool
	interrupted bool
}

func (m keyPrompt) Init() tea.Cmd {
	return nil
}

func (m keyPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.done = true
	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.interrupted = true
	case tea.KeyRunes:
		if len(keyMsg.Runes) > 0 {
			m.key = keyMsg.Runes[0]
		}
	case tea.KeySpace:
		m.key = ' '
	case tea.KeyEnter:
		m.key = '\n'
	}
	return m, tea.Quit
}

// The question is printed by the session; nothing is drawn here
func (m keyPrompt) View() string {
	return ""
}

// StreamKeys answers from a non-interactive stream, one line per answer.
// An empty line counts as no key.
type StreamKeys struct {
	r *bufio.Reader
}

// NewStreamKeys creates a StreamKeys over r
func NewStreamKeys(r io.Reader) *StreamKeys {
	return &StreamKeys{r: bufio.NewReader(r)}
}

// ReadKey returns the first character of the next line
func (k *StreamKeys) ReadKey() (rune, error) {
	line, err := k.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if err != nil && line == "" {
		return 0, io.EOF
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return '\n', nil
	}
	return []rune(line)[0], nil
}
