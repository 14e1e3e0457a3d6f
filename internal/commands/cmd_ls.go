package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *passport.App

	// flags
	jsonOutput bool
	search     string
	glob       string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *passport.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List visited countries and their cities",
		UsageText: "passport ls [--json] [--search <text>] [--glob <pattern>]",
		Description: `Displays visited countries in the order they were added, each with its
cities sorted newest first.

--search matches a case-insensitive substring of the country name.
--glob matches the country name against a glob pattern (e.g. "*land", "[A-C]*").`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "filter by name substring",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "glob",
				Aliases:     []string{"g"},
				Usage:       "filter by name glob pattern",
				Destination: &cmd.glob,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	st := cmd.app.Travel.State()

	countries, err := filterCountries(st, cmd.search, cmd.glob)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, country := range countries {
			if err := iojson.WriteLine(out, countryInfo(cmd.app.Atlas, country)); err != nil {
				return fmt.Errorf("encode country: %w", err)
			}
		}
		return nil
	}

	if len(countries) == 0 {
		fmt.Fprintf(os.Stderr, "No countries found\n")
		return nil
	}

	return writeCountries(out, cmd.app.Atlas, st, countries)
}

func filterCountries(st travel.State, search, glob string) ([]travel.VisitedCountry, error) {
	countries := st.Filter(search)
	if glob == "" {
		return countries, nil
	}

	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid glob pattern %q", glob)
	}

	var out []travel.VisitedCountry
	for _, c := range countries {
		// Patterns match case-insensitively like --search does.
		ok, _ := doublestar.Match(strings.ToLower(glob), strings.ToLower(c.Name))
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// countryJSON is the JSON output format for passport ls --json.
type countryJSON struct {
	Name      string        `json:"name"`
	Flag      string        `json:"flag"`
	Continent string        `json:"continent,omitempty"`
	Cities    []travel.City `json:"cities"`
}

func countryInfo(atlas *geo.Atlas, c travel.VisitedCountry) countryJSON {
	continent, _ := atlas.Continent(c.Name)
	return countryJSON{
		Name:      c.Name,
		Flag:      atlas.Flag(c.Name),
		Continent: continent,
		Cities:    c.CitiesByDate(),
	}
}

// writeCountries prints countries as a tree, honoring each country's
// expanded flag in st.
func writeCountries(w io.Writer, atlas *geo.Atlas, st travel.State, countries []travel.VisitedCountry) error {
	for _, c := range countries {
		marker := styles.IconExpanded
		if !st.IsExpanded(c.Name) {
			marker = styles.IconCollapsed
		}

		continent, _ := atlas.Continent(c.Name)
		line := fmt.Sprintf("%s %s %s", marker, atlas.Flag(c.Name), styles.VisitedStyle.Render(c.Name))
		if continent != "" {
			line += " " + styles.TextMutedStyle.Render(continent)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if !st.IsExpanded(c.Name) {
			if len(c.Cities) > 0 {
				_, _ = fmt.Fprintln(w, "    "+styles.TextMutedStyle.Render(fmt.Sprintf("%d hidden", len(c.Cities))))
			}
			continue
		}

		cities := c.CitiesByDate()
		for i, city := range cities {
			branch := "├─"
			if i == len(cities)-1 {
				branch = "└─"
			}
			_, _ = fmt.Fprintf(w, "    %s %s %s\n", branch, styles.CityStyle.Render(city.Name), styles.DateStyle.Render(city.VisitDate))
		}
	}
	return nil
}
