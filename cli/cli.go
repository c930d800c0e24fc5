package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/vantage-chess/gauntlet/cutechess"
	"github.com/vantage-chess/gauntlet/roster"
)

const AppName = "gauntlet"

// Fixed match parameters, matching the gauntlet convention the
// benchmark thresholds are calibrated against.
const (
	heroName         = "Vantage"
	timeControl      = "20+0.2"
	matchConcurrency = 2
)

const (
	defaultEnginePath  = "./target/release/vantage"
	defaultBookPath    = "openings/UHO_Lichess_4852_v1.epd"
	defaultResultsRoot = "gauntlet-runs"
)

type App struct {
	logger zerolog.Logger
	roster *roster.Registry
	// Match tool binary; tests point this at a fake
	matchTool string
	cli       *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger:    logger,
		roster:    roster.Default(),
		matchTool: cutechess.Tool,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Benchmark the Vantage engine against a roster of reference opponents",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "run",
		Usage:  "Run the gauntlet and merge results into the run directory",
		Action: app.run,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "opponent",
				Aliases: []string{"o"},
				Usage:   "Opponent key to play (can be specified multiple times, default: full roster)",
			},
			&cli.IntFlag{
				Name:    "rounds",
				Aliases: []string{"r"},
				Usage:   "Paired rounds per opponent (each round is two games with colors swapped)",
				Value:   10,
			},
			&cli.StringFlag{
				Name:  "run-dir",
				Usage: "Existing run directory to resume (default: a fresh timestamped directory)",
			},
			&cli.StringFlag{
				Name:  "results",
				Usage: "Root directory for fresh run directories",
				Value: defaultResultsRoot,
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "Path to the engine under test",
				Value: defaultEnginePath,
			},
			&cli.StringFlag{
				Name:  "book",
				Usage: "EPD opening book for opponents that use one",
				Value: defaultBookPath,
			},
			&cli.BoolFlag{
				Name:  "skip-build",
				Usage: "Skip building the engine before running matches",
			},
			&cli.StringFlag{
				Name:  "workspace",
				Usage: "Directory to build the engine in",
				Value: ".",
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "opponents",
		Usage:  "List the available opponents",
		Action: app.opponents,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "report",
		Usage:     "Render the summary report of an existing run directory",
		ArgsUsage: "RUN_DIR",
		Action:    app.report,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "check",
		Usage:  "Check which roster opponents are installed and executable",
		Action: app.check,
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		shortCommit := commit
		if len(shortCommit) > 8 {
			shortCommit = shortCommit[:8]
		}
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, shortCommit, date)
	}
}
