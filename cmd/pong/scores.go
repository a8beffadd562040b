package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/tui-pong/internal/platform/tui"
	"github.com/arcadelab/tui-pong/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Browse the most recent matches and the aggregated win tally.

Opens an interactive history screen by default; use --plain for a
script-friendly text table.

Examples:
  pong scores
  pong scores --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many matches to show (--plain only)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing match history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first match!")
		return
	}

	fmt.Printf("  %-18s  %-9s  %-8s  %s\n", "Date", "Score", "Winner", "Duration")
	fmt.Printf("  %-18s  %-9s  %-8s  %s\n", "----", "-----", "------", "--------")

	for _, rec := range matches {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d - %d", rec.ScoreLeft, rec.ScoreRight)
		fmt.Printf("  %-18s  %-9s  %-8s  %ds\n", dateStr, score, rec.Winner, rec.DurationSecs)
	}

	stats, err := store.GetStats()
	if err == nil && stats.MatchCount > 0 {
		fmt.Println()
		fmt.Printf("Total: %d matches  |  left %d - %d right  |  avg %.0fs\n",
			stats.MatchCount, stats.LeftWins, stats.RightWins, stats.AvgDuration)
	}
}
