// pong is a two-player terminal pong built on an ECS core.
//
// Usage:
//
//	pong play                - Play a match (w/s vs arrow keys)
//	pong serve               - Start SSH server for remote play
//	pong scores              - Show match history
//	pong config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible serves
//	--db <path>     - Set database path (default: ~/.pong/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two-player paddle duel in your terminal",
	Long: `Pong is a terminal game: two paddles, one ball, first to the win
score takes the match.

Available commands:
  play     - Play a match on this terminal (hotseat)
  serve    - Start SSH server for remote play
  scores   - View match history
  config   - Print the default configuration YAML

Examples:
  pong play
  pong play --config ./my-pong.yaml
  pong serve --ssh :2222
  pong scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
