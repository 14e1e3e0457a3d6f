package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
)

type CountryCmd struct {
	flags *Flags
	app   *passport.App
}

// NewCountryCmd creates a new country command.
func NewCountryCmd(flags *Flags, app *passport.App) *CountryCmd {
	return &CountryCmd{flags: flags, app: app}
}

// Register adds the country command to the application.
func (cmd *CountryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "country",
		Aliases: []string{"c"},
		Usage:   "Manage visited countries",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Mark a country as visited",
				UsageText: "passport country add <name>",
				Description: `Adds a country to the visited list. The name is matched case-insensitively
against the built-in country table and stored title-cased. Adding a country
removes it from the wishlist.

Examples:
  passport country add france
  passport country add united kingdom`,
				Action: cmd.runAdd,
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "Remove a visited country",
				UsageText: "passport country rm <name>",
				Action:    cmd.runRemove,
			},
			{
				Name:      "toggle",
				Usage:     "Show or hide a country's cities in this session",
				UsageText: "passport country toggle <name>",
				Action:    cmd.runToggle,
			},
		},
	})

	return app
}

func joinedArgs(c *cli.Command) string {
	return strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
}

func (cmd *CountryCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	raw := joinedArgs(c)
	if _, err := cmd.app.Travel.AddVisitedCountry(ctx, raw, travel.OriginForm); err != nil {
		return err
	}

	name := travel.CanonicalName(cmd.app.Atlas, raw)
	stats := cmd.app.Travel.Stats()
	p.Success(cmd.app.Atlas.Flag(name)+" "+name, fmt.Sprintf("%s%% of the world explored", stats.WorldPercentage))
	return nil
}

func (cmd *CountryCmd) runRemove(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	name, err := cmd.resolve(c)
	if err != nil {
		return err
	}

	changed, err := cmd.app.Travel.RemoveVisitedCountry(ctx, name)
	if err != nil {
		return err
	}
	if !changed {
		p.Infof("%s is not on your visited list", name)
		return nil
	}

	p.Successf("Removed %s", name)
	return nil
}

func (cmd *CountryCmd) runToggle(ctx context.Context, c *cli.Command) error {
	name, err := cmd.resolve(c)
	if err != nil {
		return err
	}

	st := cmd.app.Travel.State()
	if _, ok := st.Country(name); !ok {
		return fmt.Errorf("%s is not on your visited list", name)
	}

	cmd.app.Travel.ToggleCountryExpanded(name)
	st = cmd.app.Travel.State()
	country, _ := st.Country(name)

	return writeCountries(c.Root().Writer, cmd.app.Atlas, st, []travel.VisitedCountry{country})
}

// resolve maps user input onto the stored spelling of a visited country so
// exact-match removal still works with sloppy casing.
func (cmd *CountryCmd) resolve(c *cli.Command) (string, error) {
	raw := joinedArgs(c)
	if raw == "" {
		return "", fmt.Errorf("country name is required")
	}
	return resolveVisited(cmd.app.Travel.State(), cmd.app.Atlas, raw), nil
}

func resolveVisited(st travel.State, atlas travel.Atlas, raw string) string {
	if name, ok := st.FindVisited(atlas, raw); ok {
		return name
	}
	return travel.FormatName(raw)
}
