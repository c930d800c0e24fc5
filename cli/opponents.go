package cli

// This file contains the opponents command for displaying the roster.

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (a *App) opponents(ctx *cli.Context) error {
	all := a.roster.All()

	fmt.Printf("\n=== Opponents (%d total) ===\n\n", len(all))
	fmt.Printf("%-12s %-12s %5s  %-7s %-5s %s\n", "KEY", "NAME", "ELO", "PROTO", "BOOK", "COMMAND")

	for _, opp := range all {
		book := "no"
		if opp.UsesBook {
			book = "yes"
		}
		fmt.Printf("%-12s %-12s %5d  %-7s %-5s %s\n",
			opp.Key, opp.Name, opp.Rating, opp.Protocol, book, opp.Command)
	}

	fmt.Println("\nRun a subset: gauntlet run -o <key> [-o <key> ...]")
	return nil
}
