package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/passport"
	"github.com/colonyops/passport/internal/printer"
)

type ThemeCmd struct {
	flags *Flags
	app   *passport.App
}

// NewThemeCmd creates a new theme command.
func NewThemeCmd(flags *Flags, app *passport.App) *ThemeCmd {
	return &ThemeCmd{flags: flags, app: app}
}

// Register adds the theme command to the application.
func (cmd *ThemeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "theme",
		Usage:     "Show or change the color theme",
		UsageText: "passport theme [dark|light|toggle]",
		Action:    cmd.run,
	})

	return app
}

func (cmd *ThemeCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	dark, err := cmd.app.Travel.DarkMode(ctx)
	if err != nil {
		return err
	}

	switch arg := c.Args().First(); arg {
	case "":
		_, err := fmt.Fprintln(c.Root().Writer, styles.ThemeFor(dark))
		return err
	case styles.ThemeDark:
		dark = true
	case styles.ThemeLight:
		dark = false
	case "toggle":
		dark = !dark
	default:
		return fmt.Errorf("unknown theme %q (expected dark, light, or toggle)", arg)
	}

	if err := cmd.app.Travel.SetDarkMode(ctx, dark); err != nil {
		return err
	}
	styles.SetDark(dark)

	p.Successf("Theme set to %s", styles.ThemeFor(dark))
	return nil
}
