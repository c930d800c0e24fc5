package cutechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreTrackerObserve(t *testing.T) {
	tracker := NewScoreTracker("Vantage")

	require.True(t, tracker.Observe("Score of Vantage vs Crafty: 5 - 1 - 0  [0.833] 6"))

	score, seen := tracker.Last()
	require.True(t, seen)
	require.Equal(t, Score{Wins: 5, Losses: 1, Draws: 0}, score)
}

func TestScoreTrackerLastLineWins(t *testing.T) {
	tracker := NewScoreTracker("Vantage")

	// Replay of intermediate snapshots: the final tally is the last
	// line, not the sum of all lines.
	lines := []string{
		"Started game 1 of 40 (Vantage vs TSCP)",
		"Finished game 1 (Vantage vs TSCP): 1-0 {White mates}",
		"Score of Vantage vs TSCP: 5 - 1 - 0  [0.833] 6",
		"Finished game 20 (TSCP vs Vantage): 0-1 {Black mates}",
		"Score of Vantage vs TSCP: 18 - 2 - 0  [0.900] 20",
	}
	for _, line := range lines {
		tracker.Observe(line)
	}

	score, seen := tracker.Last()
	require.True(t, seen)
	require.Equal(t, Score{Wins: 18, Losses: 2, Draws: 0}, score)
}

func TestScoreTrackerIgnoresOtherLines(t *testing.T) {
	tracker := NewScoreTracker("Vantage")

	require.False(t, tracker.Observe(""))
	require.False(t, tracker.Observe("Started game 3 of 40 (Vantage vs Fruit)"))
	require.False(t, tracker.Observe("Elo difference: 381.7 +/- 151.2"))
	// Score line for a different hero must not match
	require.False(t, tracker.Observe("Score of Rival vs Fruit: 3 - 0 - 1  [0.875] 4"))

	_, seen := tracker.Last()
	require.False(t, seen)
}

func TestScoreTrackerHeroNameIsQuoted(t *testing.T) {
	// Regexp metacharacters in the hero name must be taken literally.
	tracker := NewScoreTracker("Vantage (dev)")

	require.True(t, tracker.Observe("Score of Vantage (dev) vs TSCP: 1 - 0 - 0  [1.000] 1"))
	require.False(t, tracker.Observe("Score of Vantage Xdev) vs TSCP: 1 - 0 - 0  [1.000] 1"))
}
