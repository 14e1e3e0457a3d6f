package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
	"github.com/colonyops/passport/pkg/iojson"
)

type ImportCmd struct {
	flags  *Flags
	app    *passport.App
	reader *iojson.FileReader[json.RawMessage]

	jsonOutput bool
}

// NewImportCmd creates a new import command. A nil stdin means os.Stdin.
func NewImportCmd(flags *Flags, app *passport.App, stdin io.Reader) *ImportCmd {
	return &ImportCmd{
		flags:  flags,
		app:    app,
		reader: iojson.NewFileReader[json.RawMessage](stdin),
	}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Merge a travel log from JSON",
		UsageText: "passport import [-f file.json]",
		Description: `Merges an export document, or a bare visited-countries array in the
current or the older name-only format, into the travel log.

Unknown and already visited countries are skipped. Reads stdin when no file is given.

Examples:
  passport import -f backup.json
  echo '["France","Peru"]' | passport import`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	res, err := cmd.importDocument(ctx)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().ErrWriter, "import failed", map[string]any{
				"source": cmd.reader.Source(),
				"error":  err.Error(),
			})
		}
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, os.Stderr, res)
	}

	p.Successf("Imported %d countries, %d cities, %d wishes from %s",
		res.CountriesAdded, res.CitiesAdded, res.WishesAdded, cmd.reader.Source())
	if res.Skipped > 0 {
		p.Warnf("Skipped %d unknown countries", res.Skipped)
	}
	return nil
}

func (cmd *ImportCmd) importDocument(ctx context.Context) (passport.ImportResult, error) {
	raw, err := cmd.reader.Read()
	if err != nil {
		return passport.ImportResult{}, err
	}

	doc, err := passport.ParseDocument(raw)
	if err != nil {
		return passport.ImportResult{}, err
	}

	return cmd.app.Travel.Import(ctx, doc)
}
