package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/pkg/iojson"
)

type ExportCmd struct {
	flags *Flags
	app   *passport.App

	format string
	output string
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags, app *passport.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export the travel log",
		UsageText: "passport export [--format json|yaml] [-o file]",
		Description: `Writes the visited countries, wishlist, and theme to stdout or a file.
JSON exports can be read back with 'passport import'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, yaml)",
				Value:       "json",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.format != "json" && cmd.format != "yaml" {
		return fmt.Errorf("unknown format %q (expected json or yaml)", cmd.format)
	}

	doc, err := cmd.app.Travel.Export(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = c.Root().Writer
	if cmd.output != "" {
		f, err := os.Create(cmd.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if cmd.format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	return iojson.WriteWith(w, os.Stderr, doc)
}
