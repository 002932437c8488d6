package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagConfig string
	flagLanes  int
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Start a run",
	Long: `Start a run on the given level (default: runner).

Controls:
  Left/A, Right/D  - Change lane
  Up/W/Space       - Jump
  Down/S           - Slide
  Mouse drag       - Swipe left, right, up or down
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  runner play
  runner play runner_wide
  runner play --lanes 5
  runner play --seed 42 --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().IntVar(&flagLanes, "lanes", 0, "Override the lane count (0 = level default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available levels.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Levels read these when they are created
	runner.SetConfigPath(flagConfig)
	runner.SetLaneCount(flagLanes)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
		os.Exit(1)
	}

	var saver tui.RunSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
	} else {
		saver = store
	}

	runErr := tui.Run(game, saver, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
