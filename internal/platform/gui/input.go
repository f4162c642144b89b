package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// keySource reports key state. Tests substitute a fake.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// keyboard reads the real keyboard.
type keyboard struct{}

func (keyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (keyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}

	actionKeys = map[core.Action][]ebiten.Key{
		core.ActionAcknowledge: {ebiten.KeySpace, ebiten.KeyEnter},
		core.ActionRetry:       {ebiten.KeyR},
		core.ActionBack:        {ebiten.KeyEscape, ebiten.KeyB},
		core.ActionQuit:        {ebiten.KeyQ},
	}
)

func anyPressed(src keySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src keySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.JustPressed(k) {
			return true
		}
	}
	return false
}

// readInput builds the input frame for one tick. Movement follows held keys;
// actions fire once per press.
func readInput(src keySource) core.InputFrame {
	in := core.NewInputFrame()
	if anyPressed(src, upKeys) {
		in.Move.Y--
	}
	if anyPressed(src, downKeys) {
		in.Move.Y++
	}
	if anyPressed(src, leftKeys) {
		in.Move.X--
	}
	if anyPressed(src, rightKeys) {
		in.Move.X++
	}
	for action, keys := range actionKeys {
		if anyJustPressed(src, keys) {
			in.Set(action)
		}
	}
	return in
}
