package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/registry"
)

// Options configure a terminal play session.
type Options struct {
	HoldWindow    time.Duration // How long a direction stays held after its last repeat
	ScreenshotDir string        // Where ctrl+s writes text screenshots, empty disables them
	Logger        *log.Logger
}

// Model is the Bubble Tea model that drives one level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	finished   bool
}

// NewModel creates a new model for the given level.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the level and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records actions for the next tick and refreshes held directions.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, dir, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if dir != DirNone {
		m.held.Press(dir, at)
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal.
// The level keeps its state; the renderer recenters the grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.finished {
		return m, nil
	}

	m.inputFrame.Move = m.held.Move(now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Phase != core.PhasePlaying {
		// Stale holds would move the player right after a retry.
		m.held.Release()
	}
	if m.gameState.Finished() {
		m.finished = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	if m.opts.ScreenshotDir == "" {
		return nil
	}
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return err
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Quitting reports whether the player asked to exit the program.
func (m Model) Quitting() bool { return m.quitting }

// Finished reports whether the level handed control back to the menu.
func (m Model) Finished() bool { return m.finished }

// State returns the state observed after the last tick.
func (m Model) State() core.GameState { return m.gameState }

// PlayResult tells the caller what to do after a level closes.
type PlayResult struct {
	Quit   bool // Exit the program
	State  core.GameState
	Config core.RuntimeConfig // May have been updated by resize
}

// Run plays one level until the player leaves it or quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (PlayResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{Quit: true, Config: cfg}, nil
	}
	return PlayResult{
		Quit:   m.Quitting(),
		State:  m.State(),
		Config: m.config,
	}, nil
}
