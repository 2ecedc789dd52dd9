// runner is a terminal lane-runner: dodge obstacles, collect gems and
// letters, and outlast the ever-faster track.
//
// Usage:
//
//	runner play              - Play (mode selector: story or endless)
//	runner play --endless    - Jump straight into endless mode
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
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
	Use:   "runner",
	Short: "Runner - A lane-runner for your terminal",
	Long: `Runner is a terminal lane-runner. Switch lanes, jump over spikes,
dodge alien fire, collect gems and spell out the level word to advance.
Beat all three levels and keep going in endless mode.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores and run history

Examples:
  runner play
  runner play --endless --difficulty hard
  runner serve --ssh :2222
  runner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
