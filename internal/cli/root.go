// Package cli wires the cobra command tree of the release-helper binary:
// commit listing, interactive cherry-pick selection and version.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wahlandcase/release-helper/internal/config"
	"github.com/wahlandcase/release-helper/internal/github"
	"github.com/wahlandcase/release-helper/internal/history"
	"github.com/wahlandcase/release-helper/internal/pick"
	"github.com/wahlandcase/release-helper/internal/tty"
	"github.com/wahlandcase/release-helper/internal/ui"
	"github.com/wahlandcase/release-helper/internal/update"
)

// Version is set at build time with -ldflags "-X ...cli.Version=..."
var Version = "dev"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

// usageError marks bad invocations, reported with ExitUsageError
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// app holds what the commands share; tests swap the I/O and sources
type app struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
	keys   func() pick.KeyReader
	logger *log.Logger

	// newSource overrides source selection when set
	newSource func(ctx context.Context, t target) (history.Source, error)
	// newReleases overrides the release lookup of version --check when set
	newReleases func(ctx context.Context) (update.Releases, error)

	configPath string
	verbose    bool
	noColor    bool
	cfg        *config.Config

	// running is set once flags parsed and a command starts; errors before that are usage errors
	running bool
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		now:    time.Now,
		keys:   func() pick.KeyReader { return tty.Open(os.Stdin, out) },
		logger: log.NewWithOptions(errOut, log.Options{Prefix: "release-helper"}),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "release-helper",
		Short:         "List and cherry-pick the commits of a branch since a boundary commit",
		Long:          "release-helper lists the commits of a branch down to a boundary commit and helps assemble a cherry-pick set for a downstream branch.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: <user config dir>/release-helper.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(a.commitsCmd())
	root.AddCommand(a.pickCommitsCmd())
	root.AddCommand(a.versionCmd())

	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root
}

func (a *app) setup() error {
	a.running = true
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColor()
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFrom(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "owner", cfg.Defaults.Owner, "repo", cfg.Defaults.Repo, "branch", cfg.Defaults.Branch)
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print release-helper version",
		Args:  cobra.NoArgs,
		// Config is only needed to reach GitHub
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if check {
				return a.setup()
			}
			a.running = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "release-helper version %s\n", Version)
			if !check {
				return nil
			}

			releases, err := a.releases(cmd.Context())
			if err != nil {
				return err
			}
			rel, err := update.Check(cmd.Context(), releases, Version)
			if err != nil {
				return err
			}
			if rel == nil {
				fmt.Fprintln(a.out, "You are running the latest version.")
				return nil
			}
			fmt.Fprintf(a.out, "A newer version is available: %s\n%s\n", update.VersionDisplay(rel.TagName), rel.URL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}

func (a *app) releases(ctx context.Context) (update.Releases, error) {
	if a.newReleases != nil {
		return a.newReleases(ctx)
	}
	return github.NewClient(ctx, a.credentials(), github.Options{
		APIURL: a.cfg.GitHub.APIURL,
		Logger: a.logger,
	})
}

func (a *app) credentials() github.CredentialProvider {
	return github.Chain{
		github.DefaultEnvToken,
		github.StaticToken(a.cfg.GitHub.Token),
		github.GhCLIToken{},
	}
}

// execute runs the command tree with args and returns the exit code
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(a.errOut, "Error: %v\n", err)
	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	var usage *usageError
	switch {
	case errors.As(err, &usage), !a.running:
		return ExitUsageError
	case history.IsAuthError(err):
		return ExitAuthError
	default:
		return ExitRuntimeError
	}
}

// Run executes the root command with the process arguments and returns an exit code
func Run() int {
	return newApp(os.Stdout, os.Stderr).execute(context.Background(), os.Args[1:])
}
