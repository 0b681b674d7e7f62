// Package termfix adjusts the terminal environment before lipgloss/termenv
// first query it. Import it FIRST in main:
//
//	_ "github.com/wahlandcase/release-helper/internal/termfix"
package termfix

import "os"

func init() {
	apply(os.Getenv, os.Setenv)
}

// apply skips termenv's background color query where it stalls or makes no sense:
// Warp answers it slowly, and CI logs have no terminal to answer it at all.
func apply(getenv func(string) string, setenv func(string, string) error) {
	switch {
	case getenv("TERM_PROGRAM") == "WarpTerminal":
		_ = setenv("TERM", "dumb")
		_ = setenv("COLORTERM", "truecolor")
	case getenv("CI") != "" && getenv("TERM") == "":
		_ = setenv("TERM", "dumb")
	}
}
