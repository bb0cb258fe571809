// Package physics is a small 2D world for a single ball on a pinball table.
// It implements pinball.Physics.
package physics

import (
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

// Kind classifies a body.
type Kind int

const (
	KindBall       Kind = iota // Dynamic circle
	KindWall                   // Static segment
	KindBumper                 // Static circle with a kick
	KindFlipper                // Hinged segment driven by torque
	KindSpinner                // Segment rotated about its center
	KindCoin                   // Circle trigger
	KindBooster                // Box trigger
	KindTeleporter             // Circle trigger
	KindMarker                 // Point with no shape
)

var kindNames = [...]string{
	KindBall:       "ball",
	KindWall:       "wall",
	KindBumper:     "bumper",
	KindFlipper:    "flipper",
	KindSpinner:    "spinner",
	KindCoin:       "coin",
	KindBooster:    "booster",
	KindTeleporter: "teleporter",
	KindMarker:     "marker",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Body is one object in the world.
//
// Pos is the circle center, the segment start for walls, the pivot for
// flippers and the center for spinners, boxes and markers.
type Body struct {
	Handle pinball.Handle
	Kind   Kind
	Active bool

	Pos core.Vec2
	Vel core.Vec2

	Radius float64   // Circles
	End    core.Vec2 // Walls
	Length float64   // Flippers and spinners
	Width  float64   // Boxes
	Height float64   // Boxes

	Rotation float64 // Degrees, counter-clockwise
	AngVel   float64 // Degrees per second
	MinAngle float64
	MaxAngle float64

	torque  float64
	force   core.Vec2
	resting bool
}

// Solid reports whether the ball collides with b.
func (b *Body) Solid() bool {
	switch b.Kind {
	case KindWall, KindBumper, KindFlipper, KindSpinner:
		return true
	default:
		return false
	}
}

// Segment returns the end points of a line-shaped body.
func (b *Body) Segment() (core.Vec2, core.Vec2) {
	switch b.Kind {
	case KindWall:
		return b.Pos, b.End
	case KindFlipper:
		return b.Pos, b.Pos.Add(core.V(b.Length, 0).Rotate(b.Rotation))
	case KindSpinner:
		half := core.V(b.Length/2, 0).Rotate(b.Rotation)
		return b.Pos.Sub(half), b.Pos.Add(half)
	default:
		return b.Pos, b.Pos
	}
}

// surfaceVelocity returns the velocity of the body's surface at p.
func (b *Body) surfaceVelocity(p core.Vec2) core.Vec2 {
	if b.Kind != KindFlipper || b.AngVel == 0 {
		return core.Vec2{}
	}
	return p.Sub(b.Pos).Perp().Scale(degToRad(b.AngVel))
}
