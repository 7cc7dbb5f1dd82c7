// pixelsnake is a snake arcade game for the terminal.
//
// Usage:
//
//	pixelsnake play           - Play in this terminal
//	pixelsnake serve          - Start an SSH server for remote play
//	pixelsnake scores         - Show best scores and recent games
//	pixelsnake history        - Browse the session history
//	pixelsnake config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (default: from config, 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Session history database (default: ~/.pixelsnake/history.db)
//	--scores <path>     - High score file (default: ~/.pixelsnake/scores.txt)
//	--config <path>     - Custom snake.yaml
//	--log-file <path>   - Write logs to a file
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelsnake",
	Short: "Pixel Snake - a snake arcade game in your terminal",
	Long: `Pixel Snake is a grid snake game with power-ups, obstacles and
three game modes: Classic, Time Attack and Challenge.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show best scores and recent games
  history  - Browse the session history
  config   - Print the effective configuration

Examples:
  pixelsnake play
  pixelsnake play --difficulty hard --mode time_attack
  pixelsnake serve --ssh :2222
  pixelsnake config > ~/.pixelsnake/configs/snake.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelsnake/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.pixelsnake/scores.txt", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
