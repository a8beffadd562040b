package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/game"
	"github.com/arcadelab/tui-pong/internal/platform/tui"
	"github.com/arcadelab/tui-pong/internal/storage"
)

var (
	flagConfig  string
	flagProfile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player hotseat match on this terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P          - Pause
  R          - Restart (after match over)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --config ./my-pong.yaml
  pong play --seed 42 --fps 30
  pong play --profile cpu`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")
}

func runPlay(cmd *cobra.Command, args []string) {
	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile mode %q (want cpu or mem)\n", flagProfile)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(game.NewMatch(gameCfg), store, rcfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
