package cli

// This file contains the check command: a presence and permission
// probe for the roster engines. It never speaks any engine protocol.

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v2"

	"github.com/vantage-chess/gauntlet/roster"
)

func (a *App) check(ctx *cli.Context) error {
	fmt.Printf("%-12s %-10s %s\n", "ENGINE", "STATUS", "DETAILS")

	missing := 0
	for _, opp := range a.roster.All() {
		status, details := probeOpponent(opp)
		if status != "OK" {
			missing++
		}
		fmt.Printf("%-12s %-10s %s\n", opp.Name, status, details)
	}

	if missing > 0 {
		a.logger.Warn().Int("missing", missing).Msg("Some opponents are unavailable")
	}
	return nil
}

// probeOpponent resolves an opponent's command on PATH or as a direct
// file path and checks it is executable.
func probeOpponent(opp roster.Opponent) (status, details string) {
	path, err := exec.LookPath(opp.Command)
	if err != nil {
		// Direct paths outside PATH still count when they exist
		info, statErr := os.Stat(opp.Command)
		if statErr != nil {
			return "MISSING", fmt.Sprintf("command %q not found", opp.Command)
		}
		if info.Mode()&0111 == 0 {
			return "PERM_ERR", fmt.Sprintf("found at %s but not executable", opp.Command)
		}
		path = opp.Command
	}

	return "OK", path
}
