package cli

// This file contains the run coordinator: it sequences the build gate,
// the per-opponent match sets, and the merge/report cycle for one run
// directory.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vantage-chess/gauntlet/model"
	"github.com/vantage-chess/gauntlet/pgnstats"
	"github.com/vantage-chess/gauntlet/results"
	"github.com/vantage-chess/gauntlet/roster"
)

func (a *App) run(ctx *cli.Context) error {
	rounds := ctx.Int("rounds")
	if rounds <= 0 {
		return fmt.Errorf("rounds must be a positive integer, got %d", rounds)
	}

	// Resolve the opponent selection up front: an unknown key aborts
	// before the build step and before any match is launched.
	opponents, err := a.selectOpponents(ctx.StringSlice("opponent"))
	if err != nil {
		return err
	}

	if ctx.Bool("skip-build") {
		a.logger.Info().Msg("Skipping engine build")
	} else {
		if err := a.buildEngine(ctx.String("workspace")); err != nil {
			return err
		}
	}

	enginePath, err := filepath.Abs(ctx.String("engine"))
	if err != nil {
		return fmt.Errorf("failed to resolve engine path: %w", err)
	}
	bookPath, err := filepath.Abs(ctx.String("book"))
	if err != nil {
		return fmt.Errorf("failed to resolve book path: %w", err)
	}

	runDir, resumed := resolveRunDir(ctx.String("run-dir"), ctx.String("results"), time.Now())
	if err := os.MkdirAll(filepath.Join(runDir, "pgn"), 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	agg, err := results.Load(runDir)
	if err != nil {
		return fmt.Errorf("failed to load prior results: %w", err)
	}
	if resumed {
		a.logger.Info().
			Str("dir", runDir).
			Int("opponents", agg.Len()).
			Msg("Resuming run directory")
	} else {
		a.logger.Info().Str("dir", runDir).Msg("Created run directory")
	}

	// One opponent at a time; cutechess handles its own game-level
	// concurrency within a match set.
	for _, opp := range opponents {
		fmt.Printf("\n=== MATCH: %s vs %s (%d ELO) ===\n", heroName, opp.Name, opp.Rating)

		pgnRel := filepath.Join("pgn", fmt.Sprintf("vantage_vs_%s.pgn", opp.Name))
		tally, err := a.runMatch(matchParams{
			opponent: opp,
			rounds:   rounds,
			heroCmd:  enginePath,
			bookPath: bookPath,
			runDir:   runDir,
			pgnOut:   pgnRel,
		})
		if err != nil {
			// Non-fatal: this segment contributes zero games and the
			// rest of the roster still gets scored.
			a.logger.Error().
				Err(err).
				Str("opponent", opp.Name).
				Msg("Match set failed, skipping opponent for this segment")
			continue
		}

		a.logger.Info().
			Str("opponent", opp.Name).
			Str("score", fmt.Sprintf("+%d -%d =%d", tally.Wins, tally.Losses, tally.Draws)).
			Msg("Match set complete")

		agg.Merge(tally)

		// cutechess-cli appends to the PGN artifact, so on a resumed
		// run it holds every segment. Compare the recount against the
		// merged whole-directory entry, never the segment tally.
		if merged, ok := agg.Get(opp.Name); ok {
			a.crossCheckPGN(filepath.Join(runDir, pgnRel), merged)
		}
	}

	report := results.Render(agg)
	fmt.Printf("\n%s", report)

	if err := results.WriteSummary(runDir, agg); err != nil {
		return err
	}
	a.logger.Info().Str("dir", runDir).Msg("Summary written")

	return nil
}

// selectOpponents resolves the requested keys against the registry, or
// returns the full roster in registry order when no keys were given.
func (a *App) selectOpponents(keys []string) ([]roster.Opponent, error) {
	if len(keys) == 0 {
		return a.roster.All(), nil
	}

	opponents := make([]roster.Opponent, 0, len(keys))
	for _, key := range keys {
		opp, err := a.roster.Lookup(key)
		if err != nil {
			return nil, err
		}
		opponents = append(opponents, opp)
	}
	return opponents, nil
}

// resolveRunDir returns the run directory for this execution and
// whether it was supplied by the caller (resumption) rather than
// freshly named.
func resolveRunDir(runDir, resultsRoot string, now time.Time) (string, bool) {
	if runDir != "" {
		return runDir, true
	}
	return filepath.Join(resultsRoot, "run-"+now.Format("20060102-150405")), false
}

// crossCheckPGN recounts the opponent's PGN artifact and warns when
// the recount disagrees with the merged aggregate entry. Both cover
// every segment played in the run directory, so they must agree.
// Purely diagnostic; the parsed scores stay authoritative.
func (a *App) crossCheckPGN(pgnPath string, merged model.Tally) {
	recount, err := pgnstats.CountResults(pgnPath, heroName)
	if err != nil {
		a.logger.Warn().Err(err).Str("pgn", pgnPath).Msg("PGN cross-check failed")
		return
	}

	if !recountMatches(recount, merged) {
		a.logger.Warn().
			Str("opponent", merged.Opponent).
			Str("parsed", fmt.Sprintf("+%d -%d =%d", merged.Wins, merged.Losses, merged.Draws)).
			Str("pgn", fmt.Sprintf("+%d -%d =%d", recount.Wins, recount.Losses, recount.Draws)).
			Msg("PGN recount disagrees with parsed scores")
		return
	}

	a.logger.Debug().Str("opponent", merged.Opponent).Msg("PGN recount matches parsed scores")
}

// recountMatches reports whether a PGN recount agrees with the
// expected game counts.
func recountMatches(recount, expected model.Tally) bool {
	return recount.Wins == expected.Wins &&
		recount.Losses == expected.Losses &&
		recount.Draws == expected.Draws
}
