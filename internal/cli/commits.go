package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/release-helper/internal/clipboard"
	"github.com/wahlandcase/release-helper/internal/git"
	"github.com/wahlandcase/release-helper/internal/github"
	"github.com/wahlandcase/release-helper/internal/history"
	"github.com/wahlandcase/release-helper/internal/models"
	"github.com/wahlandcase/release-helper/internal/pick"
	"github.com/wahlandcase/release-helper/internal/ui"
)

// rangeFlags select the history window, shared by commits and pick-commits
type rangeFlags struct {
	toSHA  string
	owner  string
	repo   string
	branch string
	since  string
	local  string
	dryRun bool
}

func (f *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.toSHA, "to-sha", "", "Boundary commit (hash or prefix), included in the output")
	cmd.Flags().StringVar(&f.owner, "owner", "", `Repository owner (default from config, "dotnet")`)
	cmd.Flags().StringVar(&f.repo, "repo", "", `Repository name (default from config, "dotnet-docker")`)
	cmd.Flags().StringVar(&f.branch, "branch", "", `Branch to walk (default from config, "nightly")`)
	cmd.Flags().StringVar(&f.since, "since", "", "Start of the window as YYYY-MM-DD (default: lookback_months before now)")
	cmd.Flags().StringVar(&f.local, "local", "", "Read history from a local clone at this path instead of the GitHub API")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Use a built-in sample history instead of a real repository")
}

// target is a fully resolved history request
type target struct {
	owner  string
	repo   string
	branch string
	since  time.Time
	until  string
	local  string
	dryRun bool
}

func (a *app) resolveTarget(f *rangeFlags) (target, error) {
	if f.toSHA == "" {
		return target{}, &usageError{msg: "--to-sha is required"}
	}

	t := target{
		owner:  a.cfg.Defaults.Owner,
		repo:   a.cfg.Defaults.Repo,
		branch: a.cfg.Defaults.Branch,
		since:  a.cfg.Since(a.now()),
		until:  f.toSHA,
		local:  f.local,
		dryRun: f.dryRun,
	}

	if f.since != "" {
		since, err := time.Parse(time.DateOnly, f.since)
		if err != nil {
			return target{}, &usageError{msg: fmt.Sprintf("invalid --since %q: expected YYYY-MM-DD", f.since)}
		}
		t.since = since
	}

	// A local clone knows its own coordinates unless told otherwise
	if f.local != "" && f.owner == "" && f.repo == "" && !f.dryRun {
		src, err := git.OpenLocal(f.local)
		if err != nil {
			return target{}, err
		}
		if owner, repo, err := src.Coordinates(); err == nil {
			t.owner, t.repo = owner, repo
		} else {
			a.logger.Debug("using configured coordinates", "reason", err)
		}
	}

	if f.owner != "" {
		t.owner = f.owner
	}
	if f.repo != "" {
		t.repo = f.repo
	}
	if f.branch != "" {
		t.branch = f.branch
	}
	return t, nil
}

func (a *app) source(ctx context.Context, t target) (history.Source, error) {
	if a.newSource != nil {
		return a.newSource(ctx, t)
	}

	switch {
	case t.dryRun:
		a.logger.Debug("using sample history")
		return history.SampleHistory(), nil
	case t.local != "":
		a.logger.Debug("using local clone", "path", t.local)
		return git.OpenLocal(t.local)
	default:
		a.logger.Debug("using GitHub API", "repo", t.owner+"/"+t.repo)
		return github.NewClient(ctx, a.credentials(), github.Options{
			Owner:   t.owner,
			Repo:    t.repo,
			APIURL:  a.cfg.GitHub.APIURL,
			PerPage: a.cfg.GitHub.PerPage,
			Logger:  a.logger,
		})
	}
}

// fetch returns the commits of t newest first. Nothing is returned on error.
func (a *app) fetch(ctx context.Context, t target) ([]models.Commit, error) {
	src, err := a.source(ctx, t)
	if err != nil {
		return nil, err
	}

	f := history.NewFetcher(src, t.owner, t.repo,
		history.WithLinks(history.Links{WebURL: a.cfg.GitHub.WebURL}),
		history.WithLogger(a.logger),
	)
	it, err := f.Fetch(ctx, t.since, t.until, t.branch)
	if err != nil {
		return nil, err
	}

	commits, err := history.Collect(ctx, it)
	if err != nil {
		return nil, err
	}

	if !it.ReachedBoundary() {
		a.logger.Warn("boundary commit not found, showing the whole window", "to-sha", t.until, "since", t.since.Format(time.DateOnly))
	}
	return commits, nil
}

func (a *app) header(t target) string {
	return ui.Header(t.owner, t.repo, t.branch, t.since.Format(time.DateOnly), t.until, t.dryRun)
}

func (a *app) commitsCmd() *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "commits",
		Short: "List the commits of a branch down to a boundary commit, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.resolveTarget(&flags)
			if err != nil {
				return err
			}

			commits, err := a.fetch(cmd.Context(), t)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, a.header(t))
			fmt.Fprintln(a.out)
			if len(commits) > 0 {
				fmt.Fprintln(a.out, ui.CommitList(commits))
				fmt.Fprintln(a.out)
			}
			fmt.Fprintln(a.out, ui.Count(len(commits), ui.ColorGreen))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *app) pickCommitsCmd() *cobra.Command {
	var flags rangeFlags
	var copyCommand bool

	cmd := &cobra.Command{
		Use:   "pick-commits",
		Short: "Review commits oldest first and build a cherry-pick command from the ones you keep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.resolveTarget(&flags)
			if err != nil {
				return err
			}

			commits, err := a.fetch(cmd.Context(), t)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, a.header(t))
			fmt.Fprintf(a.out, "Reviewing %s, oldest first\n", ui.Count(len(commits), ui.ColorCyan))

			session := pick.NewSession(a.keys(), a.out,
				pick.WithRenderer(ui.CommitCard),
				pick.WithPrompt(ui.Prompt()),
				pick.WithLogger(a.logger),
			)
			res, err := session.Run(pick.Chronological(commits))
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, ui.SectionHeader("SELECTED "+ui.Count(len(res.Selected), ui.ColorGreen), ui.ColorGreen))
			fmt.Fprint(a.out, res.Summary())

			if copyCommand {
				if err := clipboard.Copy(res.Command()); err != nil {
					a.logger.Warn("could not copy the command to the clipboard", "err", err)
				} else {
					fmt.Fprintln(a.out, "Copied to clipboard.")
				}
			}
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&copyCommand, "copy", false, "Also copy the cherry-pick command to the clipboard")
	return cmd
}
