package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default configuration YAML to stdout.

Redirect it to a file to start customizing:
  pong config > ~/.pong/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
