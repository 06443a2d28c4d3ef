package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The board needs at least 60x31 cells and a
truecolor terminal looks best.

Controls:
  W/Up, S/Down, A/Left, D/Right  - Slide the tiles
  R                              - New game (once the grid is locked)
  Ctrl+S                         - Save a text screenshot to ~/.tile2048/screenshots
  Q/Esc/Ctrl+C                   - Quit

Logs are discarded unless --log-file is given.

Examples:
  tile2048 term
  tile2048 term --log-file /tmp/tile2048.log --debug`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) {
	s, err := newSession("terminal", true)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	// Get terminal size; Bubble Tea sends the real one on start anyway
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(s.game, tui.Options{
		TickRate: s.fps,
		Width:    width,
		Height:   height,
		Store:    s.store,
		Logger:   s.logger,
	})
	if err != nil {
		s.Close()
		fail(err)
	}

	st := s.game.State()
	s.logger.Info("shutdown", "score", st.Score, "moves", st.Moves)
}
