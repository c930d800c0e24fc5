package model

// Tally holds the win/loss/draw counts for one opponent's match set.
// A Tally produced by a single match run covers only that segment;
// merged tallies in the results store cover the whole run directory.
type Tally struct {
	// Opponent display name, unique per run
	Opponent string `json:"opponent"`
	// Declared strength estimate of the opponent
	Rating int `json:"rating"`
	// Game counts from the hero's perspective
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Games returns the total number of completed games in the tally.
func (t Tally) Games() int {
	return t.Wins + t.Losses + t.Draws
}

// Points returns the match points scored: one per win, half per draw.
func (t Tally) Points() float64 {
	return float64(t.Wins) + 0.5*float64(t.Draws)
}

// Percentage returns the score as a percentage of available points.
// A tally with no games scores 0.
func (t Tally) Percentage() float64 {
	games := t.Games()
	if games == 0 {
		return 0
	}
	return 100 * t.Points() / float64(games)
}

// Passed reports whether the tally meets the 50% benchmark threshold.
func (t Tally) Passed() bool {
	return t.Percentage() >= 50
}

// Add sums another tally's counts into this one component-wise.
// Opponent and Rating are kept from the receiver.
func (t *Tally) Add(other Tally) {
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Draws += other.Draws
}
