// kickup is a keepy-uppy arcade game for the terminal: keep the ball
// in the air with taps, dodge the obstacles, collect coins.
//
// Usage:
//
//	kickup play              - Play the game
//	kickup stats             - Show leaderboard, achievements and recent runs
//	kickup serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.kickup/kickup.db)
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
	Use:   "kickup",
	Short: "Keepy-uppy arcade game for your terminal",
	Long: `Kickup is a terminal keepy-uppy game. Tap under the ball to kick it
up, steer it away from cones, goalposts and defenders, and grab coins
to spend on skins.

Available commands:
  play     - Start a game
  stats    - View leaderboard, achievements and recent runs
  serve    - Start SSH server for remote play

Examples:
  kickup play
  kickup play --config ./my-tuning.yaml
  kickup serve --ssh :2222
  kickup stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kickup/kickup.db", "Path to progression database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
