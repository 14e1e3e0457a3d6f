package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/passport"
)

type ReportCmd struct {
	flags *Flags
	app   *passport.App

	raw bool
}

// NewReportCmd creates a new report command.
func NewReportCmd(flags *Flags, app *passport.App) *ReportCmd {
	return &ReportCmd{flags: flags, app: app}
}

// Register adds the report command to the application.
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "report",
		Usage:     "Render a travel report",
		UsageText: "passport report [--raw]",
		Description: `Renders a markdown report of statistics, visited countries, and the wishlist.

The template can be replaced with report.template in the config file.
Use --raw to print the markdown without terminal styling.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown source",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReportCmd) run(ctx context.Context, c *cli.Command) error {
	md, err := cmd.app.Reports.Markdown(cmd.flags.ConfigPath)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	dark, err := cmd.app.Travel.DarkMode(ctx)
	if err != nil {
		return err
	}
	styles.SetDark(dark)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.app.Config.Report.WordWrap),
		glamour.WithEmoji(),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}
