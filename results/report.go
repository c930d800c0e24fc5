package results

// This file contains the report generator: turning an aggregate into
// the fixed-width summary table written to the console and to the run
// directory.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const reportRule = "---------------------------------------------------------------------"

// Render produces the summary table for an aggregate. Output is
// deterministic: rows are sorted by ascending opponent rating with
// first-seen order breaking ties. Each opponent row keeps the
// name/rating/+W -L =D shape that Load parses on resumption.
func Render(agg *Aggregate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-12s %5s  %-14s %7s %6s %8s  %s\n",
		"OPPONENT", "ELO", "RESULTS", "POINTS", "GAMES", "SCORE%", "VERDICT")
	fmt.Fprintln(&b, reportRule)

	var totalPoints float64
	var totalGames int

	for _, t := range agg.Sorted() {
		verdict := "FAIL"
		if t.Passed() {
			verdict = "PASS"
		}
		triple := fmt.Sprintf("+%d -%d =%d", t.Wins, t.Losses, t.Draws)
		fmt.Fprintf(&b, "%-12s %5d  %-14s %7.1f %6d %7.1f%%  %s\n",
			t.Opponent, t.Rating, triple, t.Points(), t.Games(), t.Percentage(), verdict)

		totalPoints += t.Points()
		totalGames += t.Games()
	}

	if totalGames > 0 {
		overall := 100 * totalPoints / float64(totalGames)
		fmt.Fprintln(&b, reportRule)
		fmt.Fprintf(&b, "%-12s %5s  %-14s %7.1f %6d %7.1f%%\n",
			"TOTAL", "", "", totalPoints, totalGames, overall)
	}

	return b.String()
}

// WriteSummary renders the aggregate and overwrites the summary file in
// the run directory, so the artifact always holds the complete current
// state.
func WriteSummary(runDir string, agg *Aggregate) error {
	path := filepath.Join(runDir, SummaryFile)
	if err := os.WriteFile(path, []byte(Render(agg)), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
