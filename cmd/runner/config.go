package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in runner configuration as YAML.

Save it to ~/.runner/configs/runner.yaml (or pass it with --config) and
edit any key; keys you leave out keep their defaults.

Examples:
  runner config > ~/.runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
