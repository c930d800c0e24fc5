package results

// This file contains the result store: loading a persisted summary from
// a run directory and merging fresh match tallies into it.

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/vantage-chess/gauntlet/model"
)

// SummaryFile is the name of the persisted summary artifact inside a
// run directory.
const SummaryFile = "summary.txt"

// rowPattern matches one persisted summary row: opponent name, integer
// rating, then a +W -L =D triple. Anything else on the line (points,
// percentage, verdict) is cosmetic and not part of the on-disk contract.
var rowPattern = regexp.MustCompile(`^(\S+)\s+(\d+)\s+\+(\d+) -(\d+) =(\d+)`)

// Aggregate holds cumulative per-opponent tallies for one run directory,
// keyed by opponent name, in first-seen order.
type Aggregate struct {
	byName  map[string]int
	tallies []model.Tally
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{byName: make(map[string]int)}
}

// Merge adds a tally into the aggregate: component-wise sum when the
// opponent already has an entry, insertion otherwise. Counts only grow;
// callers must merge each match result exactly once.
func (a *Aggregate) Merge(t model.Tally) {
	if i, ok := a.byName[t.Opponent]; ok {
		a.tallies[i].Add(t)
		return
	}
	a.byName[t.Opponent] = len(a.tallies)
	a.tallies = append(a.tallies, t)
}

// Len returns the number of opponents with an entry.
func (a *Aggregate) Len() int {
	return len(a.tallies)
}

// Get returns the cumulative tally for an opponent name.
func (a *Aggregate) Get(name string) (model.Tally, bool) {
	i, ok := a.byName[name]
	if !ok {
		return model.Tally{}, false
	}
	return a.tallies[i], true
}

// Tallies returns the entries in first-seen order.
func (a *Aggregate) Tallies() []model.Tally {
	out := make([]model.Tally, len(a.tallies))
	copy(out, a.tallies)
	return out
}

// Sorted returns the entries ordered by ascending rating. Equal ratings
// keep their first-seen order, so rendering is deterministic.
func (a *Aggregate) Sorted() []model.Tally {
	out := a.Tallies()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating < out[j].Rating
	})
	return out
}

// Load reads the persisted summary from a run directory. A missing file
// yields an empty aggregate; rows that don't match the expected shape
// are dropped so a truncated or hand-edited summary never aborts a run.
func Load(runDir string) (*Aggregate, error) {
	agg := NewAggregate()

	f, err := os.Open(filepath.Join(runDir, SummaryFile))
	if os.IsNotExist(err) {
		return agg, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := rowPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		rating, _ := strconv.Atoi(m[2])
		wins, _ := strconv.Atoi(m[3])
		losses, _ := strconv.Atoi(m[4])
		draws, _ := strconv.Atoi(m[5])

		agg.Merge(model.Tally{
			Opponent: m[1],
			Rating:   rating,
			Wins:     wins,
			Losses:   losses,
			Draws:    draws,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return agg, nil
}
