package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/pkg/iojson"
)

type StatsCmd struct {
	flags *Flags
	app   *passport.App

	jsonOutput bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *passport.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show travel statistics",
		UsageText: "passport stats [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	stats := cmd.app.Travel.Stats()
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, os.Stderr, stats)
	}

	mostContinent := "None"
	if stats.MostVisitedContinent != nil {
		mostContinent = fmt.Sprintf("%s (%d)", stats.MostVisitedContinent.Name, stats.MostVisitedContinent.Count)
	}
	mostExplored := "None"
	if stats.MostExploredCountry != nil {
		mostExplored = fmt.Sprintf("%s (%d cities)", stats.MostExploredCountry.Name, stats.MostExploredCountry.CityCount)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s Countries\t%d\n", styles.IconPin, stats.VisitedCount)
	_, _ = fmt.Fprintf(w, "%s World explored\t%s%%\n", styles.IconGlobe, stats.WorldPercentage)
	_, _ = fmt.Fprintf(w, "%s Continents\t%d/7\n", styles.IconPlane, stats.ContinentsVisited)
	_, _ = fmt.Fprintf(w, "%s Cities\t%d\n", styles.IconCity, stats.TotalCities)
	_, _ = fmt.Fprintf(w, "%s Wishlist\t%d\n", styles.IconStar, stats.WishlistCount)
	_, _ = fmt.Fprintf(w, "%s Most visited continent\t%s\n", styles.IconTrophy, mostContinent)
	_, _ = fmt.Fprintf(w, "%s Countries this year\t%d\n", styles.IconCalendar, stats.CountriesThisYear)
	_, _ = fmt.Fprintf(w, "%s Most explored\t%s\n", styles.IconCity, mostExplored)
	if err := w.Flush(); err != nil {
		return err
	}

	pct, _ := strconv.ParseFloat(stats.WorldPercentage, 64)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, styles.ProgressBar(30, pct))
	return nil
}
