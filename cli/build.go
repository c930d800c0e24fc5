package cli

// This file contains the engine build gate that runs before any
// matches are played.

import (
	"bytes"
	"fmt"
	"os/exec"
)

// buildEngine compiles the engine under test in release mode. Any
// build error aborts the run before a single match launches.
func (a *App) buildEngine(workspace string) error {
	a.logger.Info().Str("workspace", workspace).Msg("Building Vantage")

	cmd := exec.Command("cargo", "build", "--release")
	cmd.Dir = workspace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	a.logger.Debug().
		Str("command", cmd.String()).
		Msg("Executing cargo build")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build engine: %w (stderr: %s)", err, stderr.String())
	}

	a.logger.Info().Msg("Engine built successfully")
	return nil
}
