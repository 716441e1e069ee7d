// muncher is a terminal maze-chase arcade game: eat every pellet while
// dodging the ghosts, grab a power pellet to turn the tables.
//
// Usage:
//
//	muncher play             - Play the game
//	muncher menu             - Start the interactive menu
//	muncher serve            - Start SSH server for remote play
//	muncher scores           - Show high scores
//	muncher list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.muncher/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-muncher/internal/games/muncher"
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
	Use:   "muncher",
	Short: "Muncher - A maze-chase arcade game in your terminal",
	Long: `Muncher is a terminal maze-chase game. Steer through the maze, eat
every pellet, and stay clear of the ghosts. Power pellets briefly turn
the hunters into the hunted.

Available commands:
  play     - Play the game directly
  menu     - Interactive menu with scoreboard access
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  muncher play
  muncher menu
  muncher serve --ssh :2222
  muncher scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.muncher/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
