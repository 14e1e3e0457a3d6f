package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/commands"
	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/logging"
	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
	"github.com/colonyops/passport/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()
	ctx = logging.WithSessionID(ctx, uuid.NewString())
	ctx = printer.NewContext(ctx, printer.New(os.Stderr))

	var (
		logCloser   func()
		passportApp = &passport.App{}
		backend     *passport.Backend
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "passport",
		Usage:     "Track the countries, cities, and places you have been",
		UsageText: "passport [global options] command [command options]",
		Description: `Passport keeps a local log of visited countries, the cities within them,
and a wishlist of places to go next.

Run 'passport' with no arguments to open the interactive travel log.
Run 'passport country add <name>' to record a visit from the shell.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/passport.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "passport.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			if name := c.Args().First(); name != "" {
				ctx = logging.WithCommand(ctx, name)
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			backend, err = passport.OpenBackend(cfg)
			if err != nil {
				return ctx, fmt.Errorf("open storage: %w", err)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*passportApp = *passport.NewApp(backend, cfg, geo.New(), log.Logger)

			if err := passportApp.Travel.Load(ctx); err != nil {
				return ctx, fmt.Errorf("load travel log: %w", err)
			}

			// A stored theme wins over the configured default.
			dark := cfg.TUI.DarkMode != nil && *cfg.TUI.DarkMode
			if has, err := backend.Store.Has(ctx, travel.KeyDarkMode); err == nil && has {
				if dark, err = passportApp.Travel.DarkMode(ctx); err != nil {
					return ctx, err
				}
			}
			styles.SetDark(dark)

			log.Debug().
				Str("backend", string(cfg.Storage.Backend)).
				Str("data_dir", cfg.DataDir).
				Msg("passport ready")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			var closeErr error
			if backend != nil {
				if closeErr = backend.Close(); closeErr != nil {
					log.Error().Err(closeErr).Msg("failed to close storage")
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return closeErr
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, passportApp)

	app = commands.NewCountryCmd(flags, passportApp).Register(app)
	app = commands.NewCityCmd(flags, passportApp).Register(app)
	app = commands.NewWishCmd(flags, passportApp).Register(app)
	app = commands.NewLsCmd(flags, passportApp).Register(app)
	app = commands.NewStatsCmd(flags, passportApp).Register(app)
	app = commands.NewReportCmd(flags, passportApp).Register(app)
	app = commands.NewThemeCmd(flags, passportApp).Register(app)
	app = commands.NewExportCmd(flags, passportApp).Register(app)
	app = commands.NewImportCmd(flags, passportApp, os.Stdin).Register(app)
	app = commands.NewDoctorCmd(flags, passportApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = tuiCmd.Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'passport --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
