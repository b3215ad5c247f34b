package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// Game is the running simulation as seen by the model.
// *clock.Loop satisfies it.
type Game interface {
	Send(ev core.Event) bool
	Snapshot() flappy.Snapshot
}

// Model is the Bubble Tea model for one game. It never touches the
// engine directly: keys become events and frames read snapshots.
type Model struct {
	game     Game
	screen   *core.Screen
	styles   styleSet
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	snap     flappy.Snapshot
	logger   *log.Logger
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer makes the model style output for a specific renderer,
// typically one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.styles = newStyleSet(r)
	}
}

// WithModelLogger sets the logger used for screenshot failures.
func WithModelLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles: newStyleSet(lipgloss.DefaultRenderer()),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		snap:   game.Snapshot(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = m.game.Snapshot()
		return m, frameCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey turns keys into game events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}

	case key.Matches(msg, m.keys.Flap):
		if m.snap.Phase == flappy.PhaseGameOver {
			m.game.Send(core.EventRestart)
		} else {
			m.game.Send(core.EventFlap)
		}

	case key.Matches(msg, m.keys.Restart):
		m.game.Send(core.EventRestart)

	case key.Matches(msg, m.keys.Pause):
		m.game.Send(core.EventTogglePause)
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tui-flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	m.draw()
	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// draw renders the latest snapshot into the screen buffer, leaving
// room at the bottom for the help view.
func (m Model) draw() string {
	helpView := m.help.View(m.keys)
	h := m.config.ScreenH - lipgloss.Height(helpView)
	if h < 0 {
		h = 0
	}
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}
	flappy.Render(m.snap, m.screen)
	return helpView
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpView := m.draw()
	return m.styles.RenderScreen(m.screen) + "\n" + helpView
}

// Run plays one local game until the user quits or ctx is cancelled.
// The clock loop and the Bubble Tea program run side by side; whichever
// ends first takes the other down.
func Run(ctx context.Context, gameCfg config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := flappy.New(gameCfg, cfg.Seed)
	loop := clock.New(engine, clock.WithLogger(logger))
	model := NewModel(loop, cfg, WithModelLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tui: run program: %w", err)
		}
		return nil
	})

	logger.Info("game started", "seed", cfg.Seed)
	return g.Wait()
}
