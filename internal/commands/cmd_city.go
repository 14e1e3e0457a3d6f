package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/validate"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
)

type CityCmd struct {
	flags *Flags
	app   *passport.App

	// now and interactive are swapped in tests.
	now         func() time.Time
	interactive func() bool
}

// NewCityCmd creates a new city command.
func NewCityCmd(flags *Flags, app *passport.App) *CityCmd {
	return &CityCmd{
		flags:       flags,
		app:         app,
		now:         time.Now,
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Register adds the city command to the application.
func (cmd *CityCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "city",
		Usage: "Manage cities within visited countries",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Record a city visit",
				UsageText: "passport city add <country> [city] [date]",
				Description: `Records a city within a visited country. The date is YYYY-MM-DD and may
not be in the future; it defaults to today.

When the city is omitted and stdin is a terminal, an interactive form is shown.

Examples:
  passport city add Japan Kyoto 2024-04-01
  passport city add Japan`,
				Action: cmd.runAdd,
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "Remove a city from a country",
				UsageText: "passport city rm <country> <city>",
				Action:    cmd.runRemove,
			},
		},
	})

	return app
}

func (cmd *CityCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	args := c.Args()

	if args.Len() < 1 {
		return fmt.Errorf("country is required")
	}

	st := cmd.app.Travel.State()
	country := resolveVisited(st, cmd.app.Atlas, args.Get(0))
	if _, ok := st.Country(country); !ok {
		return fmt.Errorf("%s is not on your visited list; add it with 'passport country add'", country)
	}

	city := args.Get(1)
	date := args.Get(2)

	if city == "" && cmd.interactive() {
		if err := cmd.runForm(country, &city, &date); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if date == "" {
		date = cmd.now().Format(time.DateOnly)
	}

	if err := validate.CityFields(city, date, cmd.now()); err != nil {
		return err
	}

	changed, err := cmd.app.Travel.AddCity(ctx, country, city, date)
	if err != nil {
		return err
	}
	if !changed {
		p.Infof("%s is already listed under %s", city, country)
		return nil
	}

	p.Successf("Added %s to %s %s", city, cmd.app.Atlas.Flag(country), country)
	return nil
}

func (cmd *CityCmd) runForm(country string, city, date *string) error {
	now := cmd.now()
	*date = now.Format(time.DateOnly)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("City").
				Description("Visited in "+country).
				Validate(validate.CityName).
				Value(city),
			huh.NewInput().
				Title("Visit date").
				Description("YYYY-MM-DD").
				Validate(validate.VisitDate(now)).
				Value(date),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func (cmd *CityCmd) runRemove(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	args := c.Args()

	if args.Len() < 2 {
		return fmt.Errorf("country and city are required")
	}

	country := resolveVisited(cmd.app.Travel.State(), cmd.app.Atlas, args.Get(0))
	city := args.Get(1)

	changed, err := cmd.app.Travel.RemoveCity(ctx, country, city)
	if err != nil {
		return err
	}
	if !changed {
		p.Infof("%s has no city named %s", country, city)
		return nil
	}

	p.Successf("Removed %s from %s", city, country)
	return nil
}
