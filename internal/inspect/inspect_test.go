package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

func TestSummarizeBundledTutorial(t *testing.T) {
	d := mapdoc.MustBundled(mapdoc.TutorialID)
	s := Summarize(d, grid.Build(d, grid.WithLogger(nil)))

	if s.Width != 16 || s.Height != 9 {
		t.Errorf("size = %dx%d, want 16x9", s.Width, s.Height)
	}
	if s.Doors != 1 || s.Keys != 1 {
		t.Errorf("doors, keys = %d, %d, want 1, 1", s.Doors, s.Keys)
	}
	if s.Walls[core.Light] == 0 || s.Walls[core.Dark] == 0 {
		t.Errorf("both dimensions should have walls, got %v", s.Walls)
	}
	if !s.Clean() {
		t.Errorf("bundled tutorial should be clean, got %+v", s)
	}
}

func TestSummarizeUnmatchedIDs(t *testing.T) {
	d := mapdoc.Descriptor{
		Size: 16, StartX: 0, StartY: 0, GoalX: 15, GoalY: 8,
		Doors: []mapdoc.Door{{X: 3, Y: 3, ID: 1}, {X: 4, Y: 4, ID: 2, Dimension: core.Dark}},
		Keys:  []mapdoc.Key{{X: 5, Y: 5, DoorID: 2}, {X: 6, Y: 6, DoorID: 7}},
		Walls: []mapdoc.Wall{{X: 40, Y: 0}},
	}
	s := Summarize(d, grid.Build(d, grid.WithLogger(nil)))

	if len(s.DoorsWithoutKey) != 1 || s.DoorsWithoutKey[0] != 1 {
		t.Errorf("DoorsWithoutKey = %v, want [1]", s.DoorsWithoutKey)
	}
	if len(s.KeysWithoutDoor) != 1 || s.KeysWithoutDoor[0] != 7 {
		t.Errorf("KeysWithoutDoor = %v, want [7]", s.KeysWithoutDoor)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("expected 1 placement warning, got %v", s.Warnings)
	}
	if s.Clean() {
		t.Error("summary with problems should not be clean")
	}
}

func TestDumpPlain(t *testing.T) {
	d := mapdoc.Descriptor{
		Name: "tiny", Size: 16, StartX: 0, StartY: 0, GoalX: 2, GoalY: 0,
		Walls: []mapdoc.Wall{{X: 1, Y: 0, Dimension: core.Dark}},
		Doors: []mapdoc.Door{{X: 0, Y: 1, ID: 1}},
		Keys:  []mapdoc.Key{{X: 1, Y: 1, DoorID: 1}},
	}
	var buf bytes.Buffer
	if err := Dump(&buf, d, grid.Build(d, grid.WithLogger(nil)), Options{}); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"tiny  size 16  grid 16x9",
		"start (0,0)  goal (2,0)",
		"light:",
		"dark:",
		" 0 S.G.",
		" 1 DK..",
		" 0 S#G.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain dump should not contain escape codes")
	}
}
