package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
	"github.com/colonyops/passport/pkg/iojson"
)

type WishCmd struct {
	flags *Flags
	app   *passport.App

	jsonOutput bool
}

// NewWishCmd creates a new wish command.
func NewWishCmd(flags *Flags, app *passport.App) *WishCmd {
	return &WishCmd{flags: flags, app: app}
}

// Register adds the wish command to the application.
func (cmd *WishCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "wish",
		Usage: "Manage the travel wishlist",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a destination to the wishlist",
				UsageText: "passport wish add <name>",
				Action:    cmd.runAdd,
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "Remove a destination from the wishlist",
				UsageText: "passport wish rm <name>",
				Action:    cmd.runRemove,
			},
			{
				Name:      "ls",
				Usage:     "List the wishlist",
				UsageText: "passport wish ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as a JSON array",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
		},
	})

	return app
}

func (cmd *WishCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	raw := joinedArgs(c)
	if raw == "" {
		return fmt.Errorf("destination is required")
	}
	name := travel.CanonicalName(cmd.app.Atlas, raw)

	st := cmd.app.Travel.State()
	changed, err := cmd.app.Travel.AddToWishlist(ctx, raw)
	if err != nil {
		return err
	}

	switch {
	case changed:
		p.Successf("Added %s %s to your wishlist", cmd.app.Atlas.Flag(name), name)
	case st.IsVisited(name):
		p.Infof("You have already visited %s", name)
	default:
		p.Infof("%s is already on your wishlist", name)
	}
	return nil
}

func (cmd *WishCmd) runRemove(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	raw := joinedArgs(c)
	name := travel.CanonicalName(cmd.app.Atlas, raw)
	for _, w := range cmd.app.Travel.State().Wishlist {
		if travel.CanonicalName(cmd.app.Atlas, w) == name {
			name = w
			break
		}
	}

	changed, err := cmd.app.Travel.RemoveFromWishlist(ctx, name)
	if err != nil {
		return err
	}
	if !changed {
		p.Infof("%s is not on your wishlist", name)
		return nil
	}

	p.Successf("Removed %s from your wishlist", name)
	return nil
}

func (cmd *WishCmd) runList(_ context.Context, c *cli.Command) error {
	wishlist := cmd.app.Travel.State().Wishlist
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, os.Stderr, wishlist)
	}

	if len(wishlist) == 0 {
		fmt.Fprintf(os.Stderr, "Your wishlist is empty\n")
		return nil
	}

	for _, w := range wishlist {
		_, _ = fmt.Fprintf(out, "%s %s %s\n", styles.IconStar, cmd.app.Atlas.Flag(w), styles.WishStyle.Render(w))
	}
	return nil
}
