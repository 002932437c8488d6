// runner plays an endless three-lane runner in the terminal.
//
// Usage:
//
//	runner list              - List available levels
//	runner play [level]      - Play a level (default: runner)
//	runner runs [level]      - Browse recorded runs
//	runner serve             - Start SSH server for remote play
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible tracks
//	--db <path>           - Set database path (default: ~/.runner/runs.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is an endless runner: switch lanes, jump hurdles and
slide under bars for as long as you can.

Available commands:
  list     - Show all available levels
  play     - Start a run
  runs     - Browse recorded runs
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  runner play
  runner play runner_wide --seed 42
  runner play --lanes 5 --config ./runner.yaml
  runner runs
  runner serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the shared logger and hands it to the levels.
// While a run owns the terminal, logs only make sense in a file.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if cmd.Name() == "serve" && !cmd.Flags().Changed("log-level") {
		level = log.InfoLevel
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, logSink = f, f
	case cmd.Name() == "play":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	runner.SetLogger(logger)
	return nil
}
