package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/platform/desktop"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a 600x600 window and play.

Controls:
  W/Up, S/Down, A/Left, D/Right  - Slide the tiles
  R                              - New game (once the grid is locked)
  Esc / close window             - Quit

Examples:
  tile2048 play
  tile2048 play --seed 7 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := newSession("desktop", false)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	err = desktop.Run(s.game, desktop.Options{
		TPS:    s.fps,
		Store:  s.store,
		Logger: s.logger,
	})
	if err != nil {
		s.Close()
		fail(err)
	}

	st := s.game.State()
	s.logger.Info("shutdown", "score", st.Score, "moves", st.Moves)
}
