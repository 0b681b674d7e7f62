package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		wsl       bool
		available []string
		want      []string
	}{
		{"mac", "darwin", false, nil, []string{"pbcopy"}},
		{"windows", "windows", false, nil, []string{"clip"}},
		{"wsl", "linux", true, []string{"xclip"}, []string{"clip.exe"}},
		{"xclip preferred", "linux", false, []string{"xsel", "xclip"}, []string{"xclip", "-selection", "clipboard"}},
		{"xsel", "linux", false, []string{"xsel"}, []string{"xsel", "--clipboard", "--input"}},
		{"wayland", "linux", false, []string{"wl-copy"}, []string{"wl-copy"}},
		{"nothing", "linux", false, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, command(tt.goos, tt.wsl, lookPathFor(tt.available...)))
		})
	}
}
