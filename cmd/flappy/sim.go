package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a display",
	Long: `Play one round with the built-in autopilot and print the result.

The run is deterministic for a given --seed, which makes it useful for
checking that gameplay changes keep old replays intact. Scores are not
persisted.

Examples:
  flappy sim --seed 7
  flappy sim --ticks 100000 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate (0 = until game over)")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := appConfig

	logger, err := config.NewLogger(cfg.Log, os.Stderr, "flappy-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := flappy.New(flappy.Options{
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})

	sum, err := flappy.RunHeadless(ctx, sim, flappy.NewAutopilot(), flagTicks)
	if err != nil {
		logger.Warn("run interrupted", "error", err)
	}

	status := "running"
	if sum.GameOver {
		status = "game over"
	}
	fmt.Printf("seed=%d ticks=%d score=%d pipes<=%d status=%s\n",
		seed, sum.Ticks, sum.Score, sum.MaxPipes, status)
}
