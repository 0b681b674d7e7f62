package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/release-helper/internal/termfix"

import (
	"os"

	"github.com/wahlandcase/release-helper/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
