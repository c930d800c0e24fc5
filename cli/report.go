package cli

// This file contains the report command for re-rendering the summary
// of an existing run directory without playing any matches.

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantage-chess/gauntlet/results"
)

func (a *App) report(ctx *cli.Context) error {
	runDir := ctx.Args().First()
	if runDir == "" {
		return fmt.Errorf("no run directory specified (usage: %s report RUN_DIR)", AppName)
	}

	agg, err := results.Load(runDir)
	if err != nil {
		return fmt.Errorf("failed to load results from %s: %w", runDir, err)
	}
	if agg.Len() == 0 {
		return fmt.Errorf("no results found in %s", runDir)
	}

	fmt.Print(results.Render(agg))
	return nil
}
