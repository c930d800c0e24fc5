package cutechess

// match.go contains utilities for building cutechess-cli commands.

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/vantage-chess/gauntlet/roster"
)

// Tool is the external match-running binary.
const Tool = "cutechess-cli"

// BookOptions describes the opening suite handed to cutechess-cli.
// Openings are EPD positions picked in random order so paired rounds
// do not replay the same line.
type BookOptions struct {
	File string
}

// MatchOptions contains options for one cutechess-cli match set between
// the hero engine and a single opponent.
type MatchOptions struct {
	Hero        string          // Display name of the engine under test
	HeroCmd     string          // Path to the engine under test
	Opponent    roster.Opponent // Reference engine to play against
	TimeControl string          // Shared time control, e.g. "20+0.2"
	PGNOut      string          // Path for the per-opponent PGN artifact
	Rounds      int             // Paired rounds; each round is two games with colors swapped
	Concurrency int             // Games cutechess runs simultaneously
	Book        *BookOptions    // Opening book, nil when the opponent plays without one
}

// BuildMatchArgs builds cutechess-cli arguments for one match set.
func BuildMatchArgs(opts MatchOptions) []string {
	args := []string{
		"-engine",
		fmt.Sprintf("name=%s", opts.Hero),
		fmt.Sprintf("cmd=%s", opts.HeroCmd),
		"proto=uci",
		"-engine",
		fmt.Sprintf("name=%s", opts.Opponent.Name),
		fmt.Sprintf("cmd=%s", opts.Opponent.Command),
		fmt.Sprintf("proto=%s", opts.Opponent.Protocol),
		"-each",
		fmt.Sprintf("tc=%s", opts.TimeControl),
		"-pgnout", opts.PGNOut,
		"-rounds", fmt.Sprintf("%d", opts.Rounds),
		"-games", "2",
		"-repeat",
		"-concurrency", fmt.Sprintf("%d", opts.Concurrency),
	}

	if opts.Book != nil {
		args = append(args,
			"-openings",
			fmt.Sprintf("file=%s", opts.Book.File),
			"format=epd",
			"order=random",
		)
	}

	return args
}

// MatchCommand builds the full command string for logging.
// It reuses BuildMatchArgs and joins the arguments with proper shell escaping.
func MatchCommand(opts MatchOptions) string {
	args := BuildMatchArgs(opts)

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, Tool)

	for _, arg := range args {
		parts = append(parts, shellescape.Quote(arg))
	}

	return strings.Join(parts, " ")
}
