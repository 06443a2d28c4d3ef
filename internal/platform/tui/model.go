package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/platform"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// Options configures the terminal front end.
type Options struct {
	TickRate      int // frames per second; the theme's FPS when zero
	Width, Height int // initial terminal size, until the first resize
	Store         *storage.Store
	Logger        *log.Logger
	ScreenshotDir string // ~/.tile2048/screenshots when empty
}

// Model is the Bubble Tea model for a game of 2048.
type Model struct {
	game       *game.Game
	canvas     *ScreenCanvas
	recorder   *platform.Recorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	tickRate   int
	shotDir    string
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, opts Options) Model {
	th := g.Theme()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = th.FPS
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".tile2048", "screenshots")
	}

	return Model{
		game:       g,
		canvas:     NewScreenCanvas(th.Width, th.Height),
		recorder:   platform.NewRecorder(opts.Store, logger),
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		tickRate:   tickRate,
		shotDir:    shotDir,
		inputFrame: core.NewInputFrame(),
		lastTick:   time.Now(),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Moves are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionNone:
	case core.ActionQuit:
		m.recorder.Flush(m.game, true)
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = now

	out := m.game.Step(m.inputFrame, now)
	m.gameState = m.game.State()
	if out.Gained > 0 {
		m.logger.Debug("merge", "gained", out.Gained, "score", m.gameState.Score)
	}

	// Save the result once per round
	m.recorder.Flush(m.game, false)
	m.keys.Restart.SetEnabled(m.gameState.Locked)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Draw(m.canvas, m.lastTick)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("tile2048_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// tooSmall reports whether the terminal cannot fit the board and help line.
// An unknown size (zero) is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	s := m.canvas.Screen()
	return m.width < s.Width() || m.height < s.Height()+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		s := m.canvas.Screen()
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", s.Width(), s.Height()+1, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Draw(m.canvas, m.lastTick)
	board := RenderScreen(m.canvas.Screen())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	body := lipgloss.JoinVertical(lipgloss.Center, board, helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, opts Options) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
