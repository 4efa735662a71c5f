package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing Flappy Bird.

Controls (configurable under keys: in the config file):
  Space/Up/W/K - Flap
  Left click   - Flap, or restart after game over
  R/Enter      - Restart
  P            - Pause
  Q/Esc/Ctrl+C - Quit

Logs go to log.file from the config, since the game owns the terminal.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := appConfig

	logFile, err := config.OpenLogFile(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logFile, _ = config.OpenLogFile(config.LogConfig{})
	}
	defer logFile.Close()

	logger, err := config.NewLogger(cfg.Log, logFile, flappy.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	var scores flappy.ScoreStore
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		scores = storage.NewMemoryStore()
	} else {
		scores = store.Scoped(flappy.ID)
	}

	width, height := terminalSize()
	runErr := tui.Run(tui.Options{
		Store:  scores,
		Keys:   cfg.Keys,
		Step:   core.NewFixedStep(cfg.TickRate),
		Seed:   cfg.Seed,
		Width:  width,
		Height: height,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
