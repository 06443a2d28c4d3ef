// tile2048 is the 2048 sliding-tile puzzle, in a window or in the terminal.
//
// Usage:
//
//	tile2048                - Play in a desktop window (same as "play")
//	tile2048 play           - Play in a desktop window
//	tile2048 term           - Play in the terminal
//	tile2048 scores         - Show best and recent results
//	tile2048 config         - Print the default configuration
//
// Global flags:
//
//	--config <path>   - Custom YAML config (default: search ~/.tile2048, ./configs)
//	--seed <value>    - RNG seed for reproducible spawns (0 = time based)
//	--db <path>       - Results database (default: ~/.tile2048/scores.db)
//	--fps <rate>      - Override the configured frame rate
//	--log-file <path> - Append logs to a file
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagFPS     int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 - slide and merge tiles",
	Long: `tile2048 is the 2048 puzzle: slide the tiles of a 4x4 grid, merge equal
neighbours and keep going until no move is left.

Available commands:
  play     - Desktop window (default)
  term     - Terminal rendition
  scores   - Best and recent results
  config   - Print the default configuration

Examples:
  tile2048
  tile2048 term --seed 42
  tile2048 play --config ./my-theme.yaml
  tile2048 scores --plain
  tile2048 config > ~/.tile2048/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
