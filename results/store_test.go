package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/gauntlet/model"
)

func writeSummaryFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, SummaryFile), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestMergeSumsExistingEntry(t *testing.T) {
	agg := NewAggregate()
	agg.Merge(model.Tally{Opponent: "Crafty", Rating: 2300, Wins: 10, Losses: 5, Draws: 5})
	agg.Merge(model.Tally{Opponent: "Crafty", Rating: 2300, Wins: 3, Losses: 0, Draws: 2})

	got, ok := agg.Get("Crafty")
	require.True(t, ok)
	require.Equal(t, model.Tally{Opponent: "Crafty", Rating: 2300, Wins: 13, Losses: 5, Draws: 7}, got)
	require.Equal(t, 1, agg.Len())
}

func TestMergeDisjointKeysAssociative(t *testing.T) {
	a := model.Tally{Opponent: "TSCP", Rating: 1700, Wins: 18, Losses: 2}
	b := model.Tally{Opponent: "Crafty", Rating: 2300, Wins: 8, Losses: 10, Draws: 2}
	c := model.Tally{Opponent: "Fruit", Rating: 2800, Wins: 1, Losses: 17, Draws: 2}

	// merge(merge(∅,[a,b]),[c]) == merge(∅,[a,b,c])
	stepwise := NewAggregate()
	stepwise.Merge(a)
	stepwise.Merge(b)
	stepwise.Merge(c)

	oneShot := NewAggregate()
	for _, tally := range []model.Tally{a, b, c} {
		oneShot.Merge(tally)
	}

	require.Equal(t, oneShot.Tallies(), stepwise.Tallies())
}

func TestFailedMatchContributesNothing(t *testing.T) {
	// A failed match set never reaches Merge: the prior entry for that
	// opponent must survive untouched, and no zeroed entry may appear.
	agg := NewAggregate()
	agg.Merge(model.Tally{Opponent: "Phalanx", Rating: 2400, Wins: 6, Losses: 12, Draws: 2})

	before := agg.Tallies()
	// (no Merge call for the failed segment)
	require.Equal(t, before, agg.Tallies())

	_, ok := agg.Get("Stockfish")
	require.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	agg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 0, agg.Len())
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	dir := writeSummaryFile(t, `OPPONENT       ELO  RESULTS         POINTS  GAMES   SCORE%  VERDICT
---------------------------------------------------------------------
TSCP          1700  +18 -2 =0         18.0     20    90.0%  PASS
this row is garbage
Crafty        2300  +8 -10
Fairymax      2000  +9 -9 =2          10.0     20    50.0%  PASS
---------------------------------------------------------------------
TOTAL                                 28.0     40    70.0%
`)

	agg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, agg.Len())

	tscp, ok := agg.Get("TSCP")
	require.True(t, ok)
	require.Equal(t, model.Tally{Opponent: "TSCP", Rating: 1700, Wins: 18, Losses: 2}, tscp)

	fairymax, ok := agg.Get("Fairymax")
	require.True(t, ok)
	require.Equal(t, 2, fairymax.Draws)

	// The truncated Crafty row is dropped, not zeroed
	_, ok = agg.Get("Crafty")
	require.False(t, ok)
}

func TestRenderLoadRoundTrip(t *testing.T) {
	agg := NewAggregate()
	agg.Merge(model.Tally{Opponent: "Stockfish", Rating: 3500, Wins: 0, Losses: 20, Draws: 0})
	agg.Merge(model.Tally{Opponent: "TSCP", Rating: 1700, Wins: 18, Losses: 2, Draws: 0})
	agg.Merge(model.Tally{Opponent: "Crafty", Rating: 2300, Wins: 8, Losses: 10, Draws: 2})

	dir := t.TempDir()
	require.NoError(t, WriteSummary(dir, agg))

	reloaded, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, agg.Len(), reloaded.Len())
	for _, want := range agg.Tallies() {
		got, ok := reloaded.Get(want.Opponent)
		require.True(t, ok, "missing %s after round-trip", want.Opponent)
		require.Equal(t, want, got)
	}
}
