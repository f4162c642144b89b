// Package gui provides an Ebitengine desktop window for playing a level.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/game"
	"github.com/vovakirdan/veiled-path/internal/platform/fx"
)

// hudCells is the height of the status strip above the grid, in cells.
const hudCells = 1

// footCells is the height of the message strip below the grid, in cells.
const footCells = 2

// Options configure the window.
type Options struct {
	CellSize    int     // Pixels per grid unit
	FadeSeconds float64 // Background fade on dimension switch
	Fullscreen  bool
	Logger      *log.Logger
}

// Result tells the caller how the window closed.
type Result struct {
	Quit  bool // The player asked to exit the program
	State core.GameState
}

// Window implements ebiten.Game for one level.
type Window struct {
	level *game.Level
	cfg   core.RuntimeConfig
	opts  Options

	background *fx.Fade
	lastDim    core.Dimension
	state      core.GameState
	quit       bool
	logged     bool
}

// errLeave stops the run loop when the level hands control back.
var errLeave = errors.New("gui: leave level")

// NewWindow prepares a window for the level.
func NewWindow(level *game.Level, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.CellSize <= 0 {
		opts.CellSize = 40
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Window{level: level, cfg: cfg, opts: opts}
}

// Run opens the window and blocks until the level is left or the window closes.
func Run(level *game.Level, cfg core.RuntimeConfig, opts Options) (Result, error) {
	w := NewWindow(level, cfg, opts)
	w.reset()

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(level.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(w.opts.Fullscreen)
	ebiten.SetTPS(cfg.TickRate)

	err := ebiten.RunGame(w)
	switch {
	case err == nil, errors.Is(err, errLeave):
	case errors.Is(err, ebiten.Termination):
		w.quit = true
	default:
		return Result{State: w.state}, err
	}
	return Result{Quit: w.quit, State: w.state}, nil
}

func (w *Window) reset() {
	w.level.Reset(w.cfg)
	w.lastDim = w.level.Engine().Dimension()
	w.background = fx.Still(backgroundColor(w.lastDim))
}

// Update advances one fixed tick (Ebiten interface).
func (w *Window) Update() error {
	if !w.logged {
		w.logged = true
		ww, wh := ebiten.WindowSize()
		w.opts.Logger.Info("window opened", "width", ww, "height", wh)
	}

	in := readInput(keyboard{})
	if in.Has(core.ActionQuit) {
		w.quit = true
		return ebiten.Termination
	}

	res := w.level.Step(in)
	w.state = res.State
	w.background.Update(w.cfg.DeltaTime())

	if dim := w.level.Engine().Dimension(); dim != w.lastDim {
		w.lastDim = dim
		w.background = w.background.Retarget(backgroundColor(dim), w.opts.FadeSeconds)
	}
	if w.state.Finished() {
		return errLeave
	}
	return nil
}

// Layout returns the logical screen size (Ebiten interface).
// The window is scaled to fit, so the logical size depends only on the grid.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	g := w.level.Engine().Grid()
	cs := w.opts.CellSize
	return g.Width() * cs, (g.Height() + hudCells + footCells) * cs
}
