package pgnstats

// Package pgnstats recounts match results from the PGN artifact
// cutechess-cli writes, giving an independent check on the score parsed
// from its console output.

import (
	"fmt"

	"github.com/freeeve/pgn/v3"
	"github.com/vantage-chess/gauntlet/model"
)

// CountResults streams the games in a PGN file and tallies them from
// the hero's perspective. Games the hero did not play in, and games
// with an unfinished or unknown result tag, are ignored.
func CountResults(path, hero string) (model.Tally, error) {
	var tally model.Tally

	parser := pgn.Games(path)
	for game := range parser.Games {
		white := game.Tags["White"]
		black := game.Tags["Black"]

		var heroIsWhite bool
		switch hero {
		case white:
			heroIsWhite = true
		case black:
			heroIsWhite = false
		default:
			continue
		}

		switch game.Tags["Result"] {
		case "1-0":
			if heroIsWhite {
				tally.Wins++
			} else {
				tally.Losses++
			}
		case "0-1":
			if heroIsWhite {
				tally.Losses++
			} else {
				tally.Wins++
			}
		case "1/2-1/2":
			tally.Draws++
		}
	}

	if err := parser.Err(); err != nil {
		return model.Tally{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return tally, nil
}
