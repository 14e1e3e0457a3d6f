// Command docgen generates CLI reference documentation from the passport
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/passport/internal/commands"
	"github.com/colonyops/passport/internal/passport"
)

func main() {
	flags := &commands.Flags{}
	app := &passport.App{}

	root := &cli.Command{
		Name:      "passport",
		Usage:     "Track the countries, cities, and places you have been",
		UsageText: "passport [global options] command [command options]",
		Description: `Passport keeps a local log of visited countries, the cities within them,
and a wishlist of places to go next.

Run 'passport' with no arguments to open the interactive travel log.
Run 'passport country add <name>' to record a visit from the shell.`,
		Flags: commands.GlobalFlags(flags),
	}

	tuiCmd := commands.NewTuiCmd(flags, app)
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	root = commands.NewCountryCmd(flags, app).Register(root)
	root = commands.NewCityCmd(flags, app).Register(root)
	root = commands.NewWishCmd(flags, app).Register(root)
	root = commands.NewLsCmd(flags, app).Register(root)
	root = commands.NewStatsCmd(flags, app).Register(root)
	root = commands.NewReportCmd(flags, app).Register(root)
	root = commands.NewThemeCmd(flags, app).Register(root)
	root = commands.NewExportCmd(flags, app).Register(root)
	root = commands.NewImportCmd(flags, app, os.Stdin).Register(root)
	root = commands.NewDoctorCmd(flags, app).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = tuiCmd.Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	// Defaults resolve against the generating user's home directory.
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		md = strings.ReplaceAll(md, home+string(filepath.Separator), "~/")
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filepath.Dir(outPath), err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
