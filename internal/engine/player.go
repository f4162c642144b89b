package engine

import (
	"math"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// Movement constants in grid units.
const (
	Speed    = 2.0  // Units per second
	Deadzone = 0.01 // Input below this on both axes keeps the facing
)

// Player is the moving circle controlled by the user.
type Player struct {
	Pos    core.Vec2
	Facing core.Vec2 // Unit vector, cosmetic
	GoalX  int
	GoalY  int
}

func spawn(startX, startY, goalX, goalY int) Player {
	return Player{
		Pos:    core.V(float64(startX)+0.5, float64(startY)+0.5),
		Facing: core.V(1, 0),
		GoalX:  goalX,
		GoalY:  goalY,
	}
}

// Column returns the grid column the player stands in.
func (p Player) Column() int {
	x, _ := p.Pos.Floor()
	return x
}

// Body returns the collision circle of the player.
func (p Player) Body() core.Circle {
	return core.Circle{Center: p.Pos, R: core.PlayerRadius}
}

func (p *Player) move(in core.Vec2, dt float64) {
	if math.Abs(in.X) > Deadzone || math.Abs(in.Y) > Deadzone {
		p.Facing = in.Normalize()
	}
	p.Pos.X += in.X * dt * Speed
	p.Pos.Y += in.Y * dt * Speed
}

