package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsRecent bool
	flagRunsPlain  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Browse recorded runs",
	Long: `Shows the recorded runs of a level. In a terminal this opens an
interactive table; with --plain (or when piped) it prints the list.

Examples:
  runner runs
  runner runs runner_wide --recent
  runner runs --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Order by date instead of distance")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain list instead of the table")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printRuns(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, gameID string) error {
	var runs []storage.Run
	var err error
	if flagRunsRecent {
		runs, err = store.RecentRuns(gameID, flagRunsLimit)
	} else {
		runs, err = store.LongestRuns(gameID, flagRunsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Runs - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-20s  %s\n", "#", "Distance", "Hit", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %-20s  %s\n", "-", "--------", "---", "----", "----")
	for i, r := range runs {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-12s  %-20d  %s\n",
			i+1, fmt.Sprintf("%.1f m", r.Distance), cause, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %.1f m  Average: %.1f m\n", stats.Runs, stats.BestDistance, stats.AvgDistance)
	return nil
}
