package cutechess

// score.go parses the score lines cutechess-cli prints while a match
// set is running.

import (
	"fmt"
	"regexp"
	"strconv"
)

// Score is a wins/losses/draws triple from the hero's perspective.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (s Score) String() string {
	return fmt.Sprintf("+%d -%d =%d", s.Wins, s.Losses, s.Draws)
}

// ScoreTracker extracts the running score from a stream of cutechess-cli
// output lines. cutechess prints a cumulative score line after every
// finished game:
//
//	Score of Vantage vs Crafty: 5 - 1 - 0  [0.833] 6
//
// Each line is a snapshot of the whole match set so far, so the tracker
// keeps only the most recent one. The last line observed before the
// process exits is the authoritative final tally.
type ScoreTracker struct {
	re   *regexp.Regexp
	last Score
	seen bool
}

// NewScoreTracker builds a tracker for the given hero engine name.
func NewScoreTracker(hero string) *ScoreTracker {
	return &ScoreTracker{
		re: regexp.MustCompile(
			`Score of ` + regexp.QuoteMeta(hero) + ` vs .*: (\d+) - (\d+) - (\d+)`),
	}
}

// Observe feeds one output line to the tracker. It reports whether the
// line was a score line.
func (t *ScoreTracker) Observe(line string) bool {
	m := t.re.FindStringSubmatch(line)
	if m == nil {
		return false
	}

	// The pattern only admits digits, so these cannot fail
	wins, _ := strconv.Atoi(m[1])
	losses, _ := strconv.Atoi(m[2])
	draws, _ := strconv.Atoi(m[3])

	t.last = Score{Wins: wins, Losses: losses, Draws: draws}
	t.seen = true
	return true
}

// Last returns the most recently observed score and whether any score
// line has been seen at all.
func (t *ScoreTracker) Last() (Score, bool) {
	return t.last, t.seen
}
