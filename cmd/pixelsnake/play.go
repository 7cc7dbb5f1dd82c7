package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game at the main menu.

Controls:
  Arrows/WASD  - Steer, move the menu cursor
  Enter/Space  - Select
  P/Esc        - Pause and resume
  R            - Retry after game over
  Q            - Quit (from the menu or a paused game)
  Ctrl+C       - Exit immediately

Modes:
  classic      - Endless; an obstacle appears every 100 points
  time_attack  - Score as much as you can in two minutes
  challenge    - Fixed obstacle layout with moving blocks

Examples:
  pixelsnake play
  pixelsnake play --difficulty easy
  pixelsnake play --mode challenge --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Starting difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "classic", "Starting mode: classic, time_attack, challenge")
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode, err := snake.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard, "pixelsnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	services, closeServices, err := openServices(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	services.Difficulty = difficulty
	services.Mode = mode

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = services.Config.TickRate
	cfg.Seed = flagSeed

	runErr := tui.Run(services, cfg)
	closeServices()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
