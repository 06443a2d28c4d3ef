package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/platform/tui"
	"github.com/vovakirdan/tile2048/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and recent results",
	Long: `Display recorded results. On a terminal this opens an interactive
table (tab switches between best and recent); otherwise, or with --plain,
the top results are printed as text.

Examples:
  tile2048 scores
  tile2048 scores --plain --limit 5
  tile2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(err)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(os.Stdout, store); err != nil {
			store.Close()
			fail(err)
		}
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail(err)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagLimit); err != nil {
		store.Close()
		fail(err)
	}
}

// printScores writes the best results and a summary line as plain text.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.TopResults(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tile2048' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Tile", "Moves", "End", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "----", "-----", "---", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-7s  %s\n", i+1, r.Score, r.MaxTile, r.Moves, tui.EndLabel(r.Locked), dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Best tile: %d  Games: %d  Average: %.0f\n",
		stats.HighScore, stats.BestTile, stats.Games, stats.AvgScore)
	return nil
}

// clearScores deletes every recorded result.
func clearScores(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d results.\n", stats.Games)
	return nil
}

// fail prints the error and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
