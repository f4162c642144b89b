// Package game adapts the simulation to the platform Game interface and
// registers the bundled levels.
package game

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/engine"
	"github.com/vovakirdan/veiled-path/internal/i18n"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
	"github.com/vovakirdan/veiled-path/internal/registry"
	"github.com/vovakirdan/veiled-path/internal/tutorial"
)

// noticeSeconds is how long an unlock notice stays on screen.
const noticeSeconds = 2.0

// Settings are shared by every level created through the registry.
type Settings struct {
	Catalog   *i18n.Catalog
	Script    tutorial.Script
	ShowOther bool
	Logger    *log.Logger
}

// DefaultSettings returns settings with the built-in script and no translation.
func DefaultSettings() Settings {
	return Settings{
		Catalog:   i18n.MustLoad(i18n.DefaultLanguage),
		Script:    tutorial.DefaultScript(),
		ShowOther: true,
		Logger:    log.New(io.Discard),
	}
}

var (
	settingsMu sync.RWMutex
	settings   = DefaultSettings()
)

// Configure replaces the shared settings. Zero fields keep their defaults.
func Configure(s Settings) {
	def := DefaultSettings()
	if s.Catalog == nil {
		s.Catalog = def.Catalog
	}
	if s.Script.Messages == nil {
		s.Script = def.Script
	}
	if s.Logger == nil {
		s.Logger = def.Logger
	}
	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(mapdoc.TutorialID, func() registry.Game {
		return NewBundled(mapdoc.TutorialID, "Tutorial", true)
	})
	registry.Register(mapdoc.Level1ID, func() registry.Game {
		return NewBundled(mapdoc.Level1ID, "The Veiled Path", false)
	})
}

// Level is a playable level. It owns an engine.Level and the overlay state
// shown after death or victory.
type Level struct {
	id       string
	title    string
	desc     mapdoc.Descriptor
	tutorial bool
	settings Settings

	cfg   core.RuntimeConfig
	level *engine.Level
	left  bool

	notice      string
	noticeTicks int
}

// NewBundled creates a level from an embedded map.
func NewBundled(id, title string, withTutorial bool) *Level {
	return New(id, title, mapdoc.MustBundled(id), withTutorial)
}

// New creates a level from any descriptor.
func New(id, title string, desc mapdoc.Descriptor, withTutorial bool) *Level {
	return &Level{
		id:       id,
		title:    title,
		desc:     desc,
		tutorial: withTutorial,
		cfg:      core.DefaultConfig(),
	}
}

// NewCustom creates a level from a user-supplied map.
func NewCustom(desc mapdoc.Descriptor) *Level {
	title := desc.Name
	if title == "" {
		title = "Custom map"
	}
	return New("custom", title, desc, false)
}

// ID returns the level identifier.
func (l *Level) ID() string { return l.id }

// Title returns the translated display name.
func (l *Level) Title() string {
	return currentSettings().Catalog.T(l.title)
}

// Reset builds a fresh engine level.
func (l *Level) Reset(cfg core.RuntimeConfig) {
	l.cfg = cfg
	l.settings = currentSettings()
	l.left = false
	l.notice, l.noticeTicks = "", 0

	opts := []engine.Option{engine.WithLogger(l.settings.Logger)}
	if l.tutorial {
		script := l.settings.Script
		tr := l.settings.Catalog.Func()
		opts = append(opts, engine.WithTutorial(func() *tutorial.Sequencer {
			return script.Sequencer(tr)
		}))
	}
	l.level = engine.New(l.desc, opts...)
	l.settings.Logger.Info("level started", "id", l.id, "size", l.desc.Size, "warnings", len(l.level.Grid().Warnings()))
}

// Engine exposes the running simulation for front ends that draw it themselves.
func (l *Level) Engine() *engine.Level { return l.level }

// Step advances one tick.
func (l *Level) Step(in core.InputFrame) core.StepResult {
	if l.level == nil {
		l.Reset(l.cfg)
	}
	if l.left {
		return core.StepResult{State: l.State()}
	}

	if l.noticeTicks > 0 {
		l.noticeTicks--
	}

	switch l.level.State() {
	case engine.Playing:
		if in.Has(core.ActionBack) {
			l.left = true
			break
		}
		res := l.level.Tick(engine.Input{
			Move:        in.Move,
			Acknowledge: in.Has(core.ActionAcknowledge),
		}, l.cfg.DeltaTime())
		l.observe(res)

	case engine.Over:
		switch {
		case in.Has(core.ActionRetry), in.Has(core.ActionAcknowledge):
			if err := l.level.Retry(); err == nil {
				l.settings.Logger.Debug("retry", "id", l.id, "deaths", l.level.Deaths())
			}
		case in.Has(core.ActionBack):
			l.leave()
		}

	case engine.Win:
		if in.Has(core.ActionAcknowledge) || in.Has(core.ActionBack) {
			l.leave()
		}
	}

	return core.StepResult{State: l.State()}
}

func (l *Level) observe(res engine.TickResult) {
	for _, u := range res.Unlocks {
		if !u.Changed {
			continue
		}
		l.notice = l.settings.Catalog.T("Door %d opened", u.DoorID)
		l.noticeTicks = int(noticeSeconds * float64(l.cfg.TickRate))
		l.settings.Logger.Info("door opened", "id", u.DoorID, "doors", len(u.Doors), "keys", len(u.Keys))
	}
	if res.DimensionChanged {
		l.settings.Logger.Debug("dimension switched", "dimension", res.Dimension)
	}
	switch {
	case res.Died:
		pos := l.level.Player().Pos
		l.settings.Logger.Info("player died", "id", l.id, "x", pos.X, "y", pos.Y, "dimension", l.level.Dimension())
	case res.Won:
		l.settings.Logger.Info("level complete", "id", l.id, "deaths", l.level.Deaths())
	}
}

func (l *Level) leave() {
	if err := l.level.Leave(); err != nil {
		l.settings.Logger.Warn("leave level", "err", err)
		return
	}
	l.left = true
}

// State reports the phase for the platform.
func (l *Level) State() core.GameState {
	if l.level == nil {
		return core.GameState{Phase: core.PhasePlaying}
	}
	st := core.GameState{
		Deaths: l.level.Deaths(),
		Ticks:  l.level.Snapshot().Tick,
	}
	switch {
	case l.left:
		st.Phase = core.PhaseMenu
	case l.level.State() == engine.Over:
		st.Phase = core.PhaseOver
	case l.level.State() == engine.Win:
		st.Phase = core.PhaseWin
	default:
		st.Phase = core.PhasePlaying
	}
	return st
}

// Notice returns the unlock notice while it is on screen.
func (l *Level) Notice() (string, bool) {
	return l.notice, l.noticeTicks > 0
}

// T translates a UI string with the catalog the level was reset with.
func (l *Level) T(msgid string, vars ...any) string {
	cat := l.settings.Catalog
	if cat == nil {
		cat = currentSettings().Catalog
	}
	return cat.T(msgid, vars...)
}

// ShowOther reports whether the other dimension's blocking cells are drawn.
func (l *Level) ShowOther() bool { return l.settings.ShowOther }

// Descriptor returns the map the level was built from.
func (l *Level) Descriptor() mapdoc.Descriptor { return l.desc }
