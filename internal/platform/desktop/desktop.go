// Package desktop runs tile2048 in a window with Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/platform"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// Options configures the desktop front end.
type Options struct {
	TPS    int // ticks per second; the theme's FPS when zero
	Store  *storage.Store
	Logger *log.Logger
}

// keyBindings maps physical keys to actions. Several keys may share one.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionQuit},
}

// App adapts a Game to ebiten.Game.
type App struct {
	game     *game.Game
	canvas   *ImageCanvas
	recorder *platform.Recorder
	logger   *log.Logger
	input    core.InputFrame
}

// NewApp creates the ebiten adapter for g.
func NewApp(g *game.Game, opts Options) (*App, error) {
	canvas, err := NewImageCanvas()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &App{
		game:     g,
		canvas:   canvas,
		recorder: platform.NewRecorder(opts.Store, logger),
		logger:   logger,
		input:    core.NewInputFrame(),
	}, nil
}

// pollInput collects the keys pressed since the last tick.
func (a *App) pollInput() {
	a.input.Clear()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.input.Set(b.action)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		a.input.Set(core.ActionQuit)
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.pollInput()

	if a.input.Has(core.ActionQuit) {
		a.recorder.Flush(a.game, true)
		return ebiten.Termination
	}

	out := a.game.Step(a.input, time.Now())
	if out.Gained > 0 {
		a.logger.Debug("merge", "gained", out.Gained, "score", a.game.State().Score)
	}
	a.recorder.Flush(a.game, false)
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Draw(a.canvas, time.Now())
}

// Layout implements ebiten.Game. The logical screen is the theme's window
// size whatever the real window is.
func (a *App) Layout(_, _ int) (int, int) {
	th := a.game.Theme()
	return th.Width, th.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, opts Options) error {
	app, err := NewApp(g, opts)
	if err != nil {
		return err
	}

	th := g.Theme()
	tps := opts.TPS
	if tps <= 0 {
		tps = th.FPS
	}

	ebiten.SetWindowSize(th.Width, th.Height)
	ebiten.SetWindowTitle(th.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
