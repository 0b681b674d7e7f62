// Package clipboard copies text to the system clipboard using the platform's tools
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable means no clipboard tool was found
var ErrUnavailable = errors.New("no clipboard tool found (install xclip or xsel)")

// Copy copies text to the system clipboard
func Copy(text string) error {
	args := command(runtime.GOOS, isWSL(), exec.LookPath)
	if args == nil {
		return ErrUnavailable
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// command picks the clipboard tool for the platform
func command(goos string, wsl bool, lookPath func(string) (string, error)) []string {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}
	case "windows":
		return []string{"clip"}
	}

	// WSL: use clip.exe to reach Windows clipboard
	if wsl {
		return []string{"clip.exe"}
	}
	if _, err := lookPath("xclip"); err == nil {
		return []string{"xclip", "-selection", "clipboard"}
	}
	if _, err := lookPath("xsel"); err == nil {
		return []string{"xsel", "--clipboard", "--input"}
	}
	if _, err := lookPath("wl-copy"); err == nil {
		return []string{"wl-copy"}
	}
	return nil
}

// isWSL checks if running under Windows Subsystem for Linux
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}
