// Package cmd provides Cobra CLI commands for vomnibar.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/vomnibar/internal/cli"
	"github.com/bnema/vomnibar/internal/cli/model"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/url"
	"github.com/bnema/vomnibar/internal/logging"
)

var (
	app     *cli.App
	version = "dev"

	runCompleter   string
	runNewTab      bool
	runSelectFirst bool
	runKeyword     string

	rootCmd = &cobra.Command{
		Use:   "vomnibar [query]",
		Short: "A keyboard-driven omnibox for URLs, searches and history",
		Long: `Vomnibar - a keyboard-driven address bar.

Type a URL, a search, or a search-engine keyword followed by terms. Pick a
completion with Tab or the arrow keys and press Enter to open it.

The chosen destination is printed on stdout, ready to be piped into a
browser or launcher. Use 'vomnibar serve' to drive the controller from a
browser extension over stdio instead.`,
		Args:              cobra.MaximumNArgs(1),
		RunE:              runVomnibar,
		PersistentPreRunE: initApp,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run [query]",
		Short: "Open the vomnibar in the terminal",
		Long: `Open the vomnibar in the terminal and print the chosen destination.

Examples:
  vomnibar run                   # Empty query, omni completer
  vomnibar run "gh bnema"        # Start with a keyword search
  vomnibar run --completer history`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVomnibar,
	}
)

func initApp(cmd *cobra.Command, _ []string) error {
	// Skip initialization for commands that don't need app context
	switch cmd.Name() {
	case "help", "completion", "schema", "version":
		return nil
	}

	target := cli.LogToStderr
	if cmd == rootCmd || cmd == runCmd {
		target = cli.LogToFile
	}

	var err error
	app, err = cli.NewApp(target)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVar(&runCompleter, "completer", "", "completer to open with (omni or history)")
		c.Flags().BoolVar(&runNewTab, "new-tab", false, "open the result in a new tab")
		c.Flags().BoolVar(&runSelectFirst, "select-first", false, "preselect the first completion")
		c.Flags().StringVar(&runKeyword, "keyword", "", "search-engine keyword to prefill")
	}
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version reported by 'vomnibar version'.
func SetVersion(v string) {
	version = v
}

func runVomnibar(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.WatchConfig()

	opts := app.ActivateOptions()
	if runCompleter != "" {
		opts.Completer = runCompleter
	}
	if len(args) > 0 {
		opts.Query = args[0]
	}
	opts.Keyword = runKeyword
	opts.NewTab = opts.NewTab || runNewTab
	opts.SelectFirst = opts.SelectFirst || runSelectFirst

	session := model.NewSession(model.SessionConfig{
		Provider: app.Provider,
		Engines:  app.Engines,
		Options:  opts,
	})
	p := tea.NewProgram(model.NewVomnibarModel(app.Theme, session))

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := loopError(session.Run(gctx, p.Send))
		if err != nil {
			p.Quit()
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run vomnibar: %w", err)
	}

	action, ok := session.Result()
	if !ok {
		return nil
	}
	return printAction(cmd, action)
}

// loopError drops the cancellation that ends every session normally.
func loopError(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printAction writes the chosen destination to stdout and records visits.
func printAction(cmd *cobra.Command, action entity.TerminalAction) error {
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	var dest string
	switch action.Kind {
	case entity.ActionNavigate:
		dest = action.URL
	case entity.ActionRunSearch:
		dest = url.CreateSearchURL(action.Query, app.Provider.DefaultSearchEngine())
	case entity.ActionSelectTab:
		fmt.Fprintf(cmd.OutOrStdout(), "tab:%d\n", action.TabID)
		return nil
	default:
		return nil
	}

	if err := app.SearchHistoryUC.Record(ctx, dest, ""); err != nil {
		log.Warn().Err(err).Str("url", logging.TruncateURL(dest, 80)).Msg("failed to record visit")
	}
	fmt.Fprintln(cmd.OutOrStdout(), dest)
	return nil
}
