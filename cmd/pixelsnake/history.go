package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
	"github.com/vovakirdan/pixel-snake/internal/storage"
)

var flagSessionID string

var historyCmd = &cobra.Command{
	Use:   "history [difficulty]",
	Short: "Browse the session history",
	Long: `Open an interactive table of finished games, best first.
Tab switches between all games and each difficulty.
With --id a single game is printed instead.

Examples:
  pixelsnake history
  pixelsnake history hard
  pixelsnake history --id 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagSessionID, "id", "", "Print the game with this session ID")
}

func runHistory(_ *cobra.Command, args []string) {
	if flagSessionID != "" {
		showSession(flagSessionID)
		return
	}

	var d config.Difficulty
	if len(args) == 1 {
		parsed, err := config.ParseDifficulty(args[0])
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

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runErr := tui.RunHistory(store, d, width, height)
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func showSession(id string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	r, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No game with ID %s\n", id)
		os.Exit(1)
	}

	end := r.EndCause
	if r.NewHigh {
		end += " (new high score)"
	}
	fmt.Printf("Game %s\n\n", r.SessionID)
	fmt.Printf("  %-8s %s\n", "Mode", r.Mode)
	fmt.Printf("  %-8s %s\n", "Level", r.Difficulty)
	fmt.Printf("  %-8s %s\n", "Score", humanize.Comma(int64(r.Score)))
	fmt.Printf("  %-8s %d\n", "Length", r.Length)
	fmt.Printf("  %-8s %s\n", "Time", playTime(r.Ticks))
	fmt.Printf("  %-8s %s\n", "End", end)
	fmt.Printf("  %-8s %s (%s)\n", "Played", r.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
}
