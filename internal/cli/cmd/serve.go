package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/vomnibar/internal/app/messaging"
	"github.com/bnema/vomnibar/internal/config"
	"github.com/bnema/vomnibar/internal/infrastructure/textinput"
	"github.com/bnema/vomnibar/internal/logging"
	"github.com/bnema/vomnibar/internal/ui/component"
	"github.com/bnema/vomnibar/internal/ui/mainloop"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Drive the vomnibar over stdio",
	Long: `Run the vomnibar controller behind a newline-delimited JSON bridge on
stdin and stdout.

The host (a browser extension or a launcher) owns the real input element and
sends activate, hidden, refresh, key and input frames. The controller answers with
render, hide and action frames. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.WatchConfig()

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "serve")

	buf := textinput.NewBuffer()
	events := textinput.NewDispatcher()
	bridge := messaging.NewBridge(messaging.BridgeConfig{
		In:      os.Stdin,
		Out:     os.Stdout,
		Loop:    mainloop.NewLoop(0),
		Input:   buf,
		Events:  events,
		History: app.SearchHistoryUC,
	})

	vomnibar := component.NewVomnibar(component.VomnibarConfig{
		Input:    buf,
		Renderer: bridge,
		Host:     bridge,
		Browser:  bridge,
		Provider: app.Provider,
		Engines:  app.Engines,
		Post:     bridge.Post,
		Events:   events,
	})
	defer vomnibar.Close()
	bridge.SetRouter(messaging.NewRouter(vomnibar, app.Config.Strict()))

	// Engines and the default search changed: recompute what is shown.
	app.ConfigManager.OnConfigChange(func(*config.Config) {
		bridge.Post(func() { vomnibar.Refresh(ctx) })
	})

	logging.FromContext(ctx).Info().
		Int("search_engines", app.Engines.Len()).
		Bool("strict", app.Config.Strict()).
		Msg("bridge ready")

	return bridge.Run(ctx)
}
