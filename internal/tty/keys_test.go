package tty

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamKeys(t *testing.T) {
	k := NewStreamKeys(strings.NewReader("y\nNo thanks\n\nY"))

	want := []rune{'y', 'N', '\n', 'Y'}
	for _, w := range want {
		got, err := k.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	_, err := k.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestStreamKeys_ReadFailure(t *testing.T) {
	_, err := NewStreamKeys(failingReader{}).ReadKey()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestKeyPrompt_Update(t *testing.T) {
	tests := []struct {
		name        string
		msg         tea.KeyMsg
		key         rune
		interrupted bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, 'y', false},
		{"upper rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, 'Y', false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ' ', false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, '\n', false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, 0, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := keyPrompt{}.Update(tt.msg)
			m := model.(keyPrompt)

			assert.True(t, m.done)
			assert.Equal(t, tt.key, m.key)
			assert.Equal(t, tt.interrupted, m.interrupted)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestKeyPrompt_IgnoresOtherMessages(t *testing.T) {
	model, cmd := keyPrompt{}.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.False(t, model.(keyPrompt).done)
	assert.Nil(t, cmd)
}
