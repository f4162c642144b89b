package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// stubGame records the input of every step.
type stubGame struct {
	phase  core.Phase
	inputs []core.InputFrame
	resets int
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState        { return core.GameState{Phase: g.phase} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		dir    Direction
		quit   bool
	}{
		{"q", core.ActionQuit, DirNone, true},
		{"w", core.ActionNone, DirUp, false},
		{"up", core.ActionNone, DirUp, false},
		{"s", core.ActionNone, DirDown, false},
		{"a", core.ActionNone, DirLeft, false},
		{"right", core.ActionNone, DirRight, false},
		{" ", core.ActionAcknowledge, DirNone, false},
		{"enter", core.ActionAcknowledge, DirNone, false},
		{"r", core.ActionRetry, DirNone, false},
		{"esc", core.ActionBack, DirNone, false},
		{"x", core.ActionNone, DirNone, false},
	}
	for _, tt := range tests {
		action, dir, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || dir != tt.dir || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %d, %v), want (%v, %d, %v)",
				tt.key, action, dir, quit, tt.action, tt.dir, tt.quit)
		}
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(DirRight, t0)
	if got := h.Move(t0); got != core.V(1, 0) {
		t.Fatalf("Move after press = %+v, want (1, 0)", got)
	}
	// The first press lasts until auto-repeat starts.
	if !h.Held(DirRight, t0.Add(repeatDelay)) {
		t.Error("first press should be held through the repeat delay")
	}
	if h.Held(DirRight, t0.Add(repeatDelay+time.Millisecond)) {
		t.Error("first press should expire after the repeat delay")
	}

	// A repeat extends the hold by the window only.
	t1 := t0.Add(450 * time.Millisecond)
	h.Press(DirRight, t1)
	if !h.Held(DirRight, t1.Add(100*time.Millisecond)) {
		t.Error("repeat should hold for the window")
	}
	if h.Held(DirRight, t1.Add(101*time.Millisecond)) {
		t.Error("repeat should expire after the window")
	}
}

func TestHeldKeysOpposites(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(DirLeft, t0)
	h.Press(DirUp, t0)
	if got := h.Move(t0); got != core.V(-1, -1) {
		t.Fatalf("Move = %+v, want (-1, -1)", got)
	}

	h.Press(DirRight, t0)
	if got := h.Move(t0); got != core.V(1, -1) {
		t.Errorf("pressing right should release left, Move = %+v", got)
	}

	h.Release()
	if got := h.Move(t0); got != (core.Vec2{}) {
		t.Errorf("Move after Release = %+v, want zero", got)
	}
}

func TestModelTickForwardsInput(t *testing.T) {
	g := &stubGame{phase: core.PhasePlaying}
	m := NewModel(g, core.DefaultConfig(), Options{HoldWindow: 150 * time.Millisecond})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	t0 := time.Unix(1000, 0)
	next, _ := m.handleKey(keyMsg("d"), t0)
	next, _ = next.(Model).handleKey(keyMsg(" "), t0)
	next, cmd := next.(Model).handleTick(t0.Add(10 * time.Millisecond))
	if cmd == nil {
		t.Error("tick should schedule the next tick while playing")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.inputs))
	}
	in := g.inputs[0]
	if in.Move != core.V(1, 0) || !in.Has(core.ActionAcknowledge) {
		t.Errorf("step input = %+v, want move right and acknowledge", in)
	}

	// Actions are edges: the next tick carries only the held direction.
	next.(Model).handleTick(t0.Add(20 * time.Millisecond))
	if g.inputs[1].Has(core.ActionAcknowledge) {
		t.Error("acknowledge should be cleared after one tick")
	}
	if g.inputs[1].Move != core.V(1, 0) {
		t.Errorf("held direction lost, Move = %+v", g.inputs[1].Move)
	}
}

func TestModelFinishedLevelQuits(t *testing.T) {
	g := &stubGame{phase: core.PhaseMenu}
	m := NewModel(g, core.DefaultConfig(), Options{})

	next, cmd := m.handleTick(time.Unix(1000, 0))
	if cmd == nil {
		t.Fatal("finished level should quit the program loop")
	}
	fm := next.(Model)
	if !fm.Finished() || fm.Quitting() {
		t.Errorf("Finished() = %v, Quitting() = %v, want true, false", fm.Finished(), fm.Quitting())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubGame{phase: core.PhasePlaying}, core.DefaultConfig(), Options{})
	next, cmd := m.handleKey(keyMsg("q"), time.Now())
	if cmd == nil || !next.(Model).Quitting() {
		t.Error("q should quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{phase: core.PhasePlaying}, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60},
		Options{ScreenshotDir: dir})
	if err := m.saveScreenshot(); err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	if len(matches) != 1 {
		t.Fatalf("expected one screenshot, got %v", matches)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	out := RenderScreen(s)
	if !strings.Contains(out, "cd") || !strings.Contains(out, "a") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestMenuSelect(t *testing.T) {
	items := []MenuItem{
		{ID: "tutorial", Title: "Tutorial", Source: SourceBundled, Size: 16},
		{ID: "level1", Title: "The Veiled Path", Source: SourceBundled, Size: 32},
	}
	m := NewMenuModel(items, 80, 24, nil, "")

	next, _ := m.Update(keyMsg("down"))
	next, cmd := next.(MenuModel).Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.ID != "level1" {
		t.Fatalf("Selected() = %+v, want level1", sel)
	}
}

func TestMenuView(t *testing.T) {
	items := []MenuItem{{ID: "tutorial", Title: "Tutorial", Source: SourceBundled, Size: 16}}
	m := NewMenuModel(items, 80, 24, nil, "You win!")
	view := m.View()
	for _, want := range []string{"Tutorial", "You win!", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	next, _ := m.Update(keyMsg("q"))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit the menu")
	}
}
