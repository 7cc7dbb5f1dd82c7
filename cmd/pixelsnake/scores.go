package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/storage"
)

var (
	flagRecent          int
	flagClear           bool
	flagClearDifficulty string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores and recent games",
	Long: `Display the best score per difficulty, per-difficulty statistics
from the session history and the most recent games.

With --clear the recorded games are deleted instead, either all of them or
only those of --difficulty. Best scores are kept.

Examples:
  pixelsnake scores
  pixelsnake scores --recent 20
  pixelsnake scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent games to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded games")
	scoresCmd.Flags().StringVar(&flagClearDifficulty, "difficulty", "", "Only clear games of this difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagClear {
		clearHistory()
		return
	}

	board, err := storage.OpenScoreBoard(flagScoresPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-8s  %10s\n", "Level", "Best")
	fmt.Printf("  %-8s  %10s\n", "-----", "----")
	for _, d := range config.Difficulties() {
		fmt.Printf("  %-8s  %10s\n", d.Label(), humanize.Comma(int64(board.Best(d))))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nWarning: session history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	recent, err := store.RecentSessions(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(recent) == 0 {
		fmt.Println()
		fmt.Println("No games recorded yet.")
		fmt.Println("Play 'pixelsnake play' to set the first high score!")
		return
	}

	fmt.Println()
	fmt.Printf("  %-8s  %6s  %8s  %8s  %10s  %s\n", "Level", "Games", "Average", "Longest", "Time", "Last played")
	for _, d := range config.Difficulties() {
		st := stats[string(d)]
		if st == nil {
			continue
		}
		fmt.Printf("  %-8s  %6s  %8.0f  %8d  %10s  %s\n",
			d.Label(),
			humanize.Comma(int64(st.Games)),
			st.AvgScore,
			st.LongestSnake,
			playTime(st.TotalTicks),
			humanize.Time(st.LastPlayed),
		)
	}

	fmt.Println()
	fmt.Println("Recent games")
	fmt.Println()
	fmt.Printf("  %-11s  %-6s  %8s  %4s  %-9s  %s\n", "Mode", "Level", "Score", "Len", "End", "When")
	for _, r := range recent {
		end := r.EndCause
		if r.NewHigh {
			end += " *"
		}
		fmt.Printf("  %-11s  %-6s  %8s  %4d  %-9s  %s\n",
			r.Mode, r.Difficulty, humanize.Comma(int64(r.Score)), r.Length, end, humanize.Time(r.CreatedAt))
	}
}

func clearHistory() {
	var d config.Difficulty
	if flagClearDifficulty != "" {
		parsed, err := config.ParseDifficulty(flagClearDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		d = parsed
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearSessions(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if d == "" {
		fmt.Println("Cleared all recorded games.")
	} else {
		fmt.Printf("Cleared %s games.\n", d.Label())
	}
}

// playTime formats a tick count as minutes and seconds at the default rate.
func playTime(ticks int64) string {
	secs := ticks / int64(config.DefaultSnakeConfig().TickRate)
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
