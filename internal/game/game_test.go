package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/i18n"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
	"github.com/vovakirdan/veiled-path/internal/registry"
)

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestBundledLevelsRegistered(t *testing.T) {
	list := registry.List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != mapdoc.TutorialID || ids[1] != mapdoc.Level1ID {
		t.Errorf("registry order = %v, expected tutorial then level1", ids)
	}

	g, err := registry.Create(mapdoc.Level1ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "The Veiled Path" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func deadlyDescriptor() mapdoc.Descriptor {
	return mapdoc.Descriptor{
		Name: "deadly", Size: 16,
		StartX: 0, StartY: 4,
		GoalX: 15, GoalY: 8,
		Walls: []mapdoc.Wall{{X: 1, Y: 4, Dimension: core.Light}},
	}
}

func TestOverRetryAndBack(t *testing.T) {
	l := NewCustom(deadlyDescriptor())
	l.Reset(core.DefaultConfig())

	res := l.Step(input())
	if res.State.Phase != core.PhaseOver {
		t.Fatalf("phase %s, expected over", res.State.Phase)
	}
	if res.State.Deaths != 1 {
		t.Errorf("deaths = %d", res.State.Deaths)
	}

	res = l.Step(input(core.ActionRetry))
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("retry should resume play, got %s", res.State.Phase)
	}

	l.Step(input())
	res = l.Step(input(core.ActionBack))
	if res.State.Phase != core.PhaseMenu || !res.State.Finished() {
		t.Errorf("back from over should return to menu, got %s", res.State.Phase)
	}

	// Finished levels ignore input.
	if res := l.Step(input(core.ActionRetry)); res.State.Phase != core.PhaseMenu {
		t.Errorf("phase after leaving = %s", res.State.Phase)
	}
}

func TestWinThenMenu(t *testing.T) {
	d := mapdoc.Descriptor{Name: "short", Size: 16, StartX: 0, StartY: 4, GoalX: 2, GoalY: 4}
	l := NewCustom(d)
	l.Reset(core.DefaultConfig())

	right := input()
	right.Move = core.V(1, 0)
	var phase core.Phase
	for i := 0; i < 200; i++ {
		phase = l.Step(right).State.Phase
		if phase != core.PhasePlaying {
			break
		}
	}
	if phase != core.PhaseWin {
		t.Fatalf("phase %s, expected win", phase)
	}

	if res := l.Step(input(core.ActionRetry)); res.State.Phase != core.PhaseWin {
		t.Errorf("retry is not offered after a win, got %s", res.State.Phase)
	}
	if res := l.Step(input(core.ActionAcknowledge)); res.State.Phase != core.PhaseMenu {
		t.Errorf("acknowledge after win should open the menu, got %s", res.State.Phase)
	}
}

func TestBackWhilePlaying(t *testing.T) {
	l := NewBundled(mapdoc.Level1ID, "Level", false)
	l.Reset(core.DefaultConfig())
	if res := l.Step(input(core.ActionBack)); !res.State.Finished() {
		t.Errorf("back while playing should leave, got %s", res.State.Phase)
	}
}

func TestTutorialHintRendered(t *testing.T) {
	l := NewBundled(mapdoc.TutorialID, "Tutorial", true)
	l.Reset(core.DefaultConfig())
	l.Step(input())

	s := core.NewScreen(80, 24)
	l.Render(s)
	out := s.String()
	if !strings.Contains(out, "Welcome") {
		t.Errorf("first hint not rendered:\n%s", out)
	}
	if !strings.Contains(out, "◎") {
		t.Error("goal not rendered")
	}
	if !strings.Contains(out, "●") {
		t.Error("player not rendered")
	}

	l.Step(input(core.ActionAcknowledge))
	s.Clear()
	l.Render(s)
	if strings.Contains(s.String(), "Welcome") {
		t.Error("dismissed hint still rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	l := NewBundled(mapdoc.Level1ID, "Level", false)
	l.Reset(core.DefaultConfig())

	s := core.NewScreen(40, 10)
	l.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestRenderOverOverlay(t *testing.T) {
	l := NewCustom(deadlyDescriptor())
	l.Reset(core.DefaultConfig())
	l.Step(input())

	s := core.NewScreen(80, 24)
	l.Render(s)
	if !strings.Contains(s.String(), "You died") {
		t.Errorf("death overlay missing:\n%s", s.String())
	}
}

func TestConfigureTranslates(t *testing.T) {
	fr, err := i18n.Load("fr")
	if err != nil {
		t.Fatal(err)
	}
	Configure(Settings{Catalog: fr, ShowOther: true})
	defer Configure(DefaultSettings())

	l := NewBundled(mapdoc.TutorialID, "Tutorial", true)
	l.Reset(core.DefaultConfig())
	l.Step(input())

	if l.Title() != "Tutoriel" {
		t.Errorf("Title() = %q", l.Title())
	}
	msg := l.Engine().Snapshot().Message
	if !strings.HasPrefix(msg, "Bienvenue") {
		t.Errorf("hint not translated: %q", msg)
	}
	if got := l.T("Deaths: %d", 2); got == "Deaths: 2" {
		t.Errorf("T should use the French catalog, got %q", got)
	}

	for _, info := range registry.List() {
		if info.ID == mapdoc.TutorialID && info.Title != "Tutoriel" {
			t.Errorf("registry title = %q, want Tutoriel", info.Title)
		}
	}
}

func TestNoticeAfterUnlock(t *testing.T) {
	d := mapdoc.Descriptor{
		Size: 16, StartX: 0, StartY: 4, GoalX: 15, GoalY: 8,
		Keys:  []mapdoc.Key{{X: 1, Y: 4, DoorID: 3}},
		Doors: []mapdoc.Door{{X: 8, Y: 0, ID: 3}},
	}
	l := New("notice", "Notice", d, false)
	l.Reset(core.DefaultConfig())
	if _, ok := l.Notice(); ok {
		t.Fatal("no notice expected before the key is taken")
	}

	right := input()
	right.Move = core.V(1, 0)
	for i := 0; i < 60; i++ {
		l.Step(right)
		if _, ok := l.Notice(); ok {
			break
		}
	}
	notice, ok := l.Notice()
	if !ok || notice != "Door 3 opened" {
		t.Errorf("Notice() = %q, %v, want \"Door 3 opened\", true", notice, ok)
	}
	if l.Descriptor().Size != 16 {
		t.Errorf("Descriptor() lost the map")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five six", 9, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Errorf("cut should be marked: %q", lines)
	}
	if got := wrap("short", 20, 2); len(got) != 1 || got[0] != "short" {
		t.Errorf("wrap(short) = %q", got)
	}
}

func TestMinScreenSize(t *testing.T) {
	w, h := MinScreenSize(32, 18)
	if w > 80 || h > 24 {
		t.Errorf("level1 needs %dx%d, should fit 80x24", w, h)
	}
}
