package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/metrics"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/profiler"
	"github.com/colonyops/passport/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *passport.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *passport.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "debug-port",
			Usage:       "serve pprof and Prometheus metrics on 127.0.0.1 at this port while the TUI runs",
			Sources:     cli.EnvVars("PASSPORT_DEBUG_PORT"),
			Destination: &cmd.flags.DebugPort,
		},
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive travel log",
		Action: cmd.run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.flags.DebugPort > 0 {
		m := metrics.New(cmd.app.Travel.Stats)
		cmd.app.Travel.Observe(m)

		server := profiler.New(cmd.flags.DebugPort, profiler.Route{Pattern: "/metrics", Handler: m.Handler()})
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("failed to start debug server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown debug server")
			}
		}()
		log.Info().
			Str("pprof", fmt.Sprintf("http://%s/debug/pprof/", server.Addr())).
			Str("metrics", fmt.Sprintf("http://%s/metrics", server.Addr())).
			Msg("debug endpoints available")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := tui.Options{CityConfirmDelay: cmd.app.Config.TUI.CityConfirmDelay}
	if cmd.app.Config.Watch() {
		opts.Watcher = cmd.app.Backend.Watcher
	}

	model := tui.New(ctx, cmd.app, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
