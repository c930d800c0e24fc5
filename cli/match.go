package cli

// This file contains the match runner: supervising one cutechess-cli
// process and extracting the final score from its output stream.

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vantage-chess/gauntlet/cutechess"
	"github.com/vantage-chess/gauntlet/model"
	"github.com/vantage-chess/gauntlet/roster"
)

// errNoScore marks a match set that exited cleanly without printing a
// single score line. That means the tool's output format changed or no
// games actually ran; neither is a legitimate 0-0-0 result.
var errNoScore = errors.New("no score lines in match output")

type matchParams struct {
	opponent roster.Opponent
	rounds   int
	heroCmd  string // absolute path to the engine under test
	bookPath string // absolute path to the opening book
	runDir   string // working directory for the match process
	pgnOut   string // PGN artifact path, relative to runDir
}

// runMatch plays one full match set against a single opponent and
// returns its tally. The process output is consumed line by line as it
// arrives and echoed to the console, so a watcher sees live progress
// and a hang is distinguishable from a long game.
func (a *App) runMatch(p matchParams) (model.Tally, error) {
	opts := cutechess.MatchOptions{
		Hero:        heroName,
		HeroCmd:     p.heroCmd,
		Opponent:    p.opponent,
		TimeControl: timeControl,
		PGNOut:      p.pgnOut,
		Rounds:      p.rounds,
		Concurrency: matchConcurrency,
	}
	if p.opponent.UsesBook {
		opts.Book = &cutechess.BookOptions{File: p.bookPath}
	}

	a.logger.Debug().
		Str("command", cutechess.MatchCommand(opts)).
		Str("dir", p.runDir).
		Msg("Launching match set")

	cmd := exec.Command(a.matchTool, cutechess.BuildMatchArgs(opts)...)
	cmd.Dir = p.runDir

	// Merge stderr into stdout so engine chatter and tool diagnostics
	// land in one line-ordered stream.
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return model.Tally{}, fmt.Errorf("failed to open output pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return model.Tally{}, fmt.Errorf("failed to launch %s: %w", a.matchTool, err)
	}

	tracker := cutechess.NewScoreTracker(heroName)
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Println(line)
		tracker.Observe(line)
	}
	scanErr := scanner.Err()
	waitErr := cmd.Wait()

	// xboard engines drop per-game scratch files (log.*, game.*) into
	// the working directory, whether or not the match set finished.
	if p.opponent.Protocol == roster.ProtocolXBoard {
		a.removeScratchFiles(p.runDir)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return model.Tally{}, fmt.Errorf("match against %s failed with exit code %d",
				p.opponent.Name, exitErr.ExitCode())
		}
		return model.Tally{}, fmt.Errorf("match against %s failed: %w", p.opponent.Name, waitErr)
	}
	if scanErr != nil {
		return model.Tally{}, fmt.Errorf("failed reading output of match against %s: %w",
			p.opponent.Name, scanErr)
	}

	score, seen := tracker.Last()
	if !seen {
		return model.Tally{}, fmt.Errorf("match against %s: %w", p.opponent.Name, errNoScore)
	}

	return model.Tally{
		Opponent: p.opponent.Name,
		Rating:   p.opponent.Rating,
		Wins:     score.Wins,
		Losses:   score.Losses,
		Draws:    score.Draws,
	}, nil
}

// removeScratchFiles cleans up engine scratch files from a match
// working directory. Removal failures are not worth failing a run over.
func (a *App) removeScratchFiles(dir string) {
	for _, pattern := range []string{"log.*", "game.*"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				a.logger.Debug().Err(err).Str("file", path).Msg("Failed to remove scratch file")
			}
		}
	}
}
