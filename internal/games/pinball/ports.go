package pinball

import "github.com/vovakirdan/tui-pinball/internal/core"

// Handle identifies a body or shape owned by the physics collaborator.
// The zero Handle never refers to anything.
type Handle int

// NoHandle is the invalid handle.
const NoHandle Handle = 0

// ForceMode selects how ApplyImpulse interprets its vector.
type ForceMode int

const (
	// ForceModeForce is applied over the current physics step (scaled by dt).
	ForceModeForce ForceMode = iota
	// ForceModeImpulse changes momentum instantly.
	ForceModeImpulse
)

// Physics is what the game needs from the physics engine.
// All calls are synchronous and happen on the game goroutine.
type Physics interface {
	// Overlaps reports whether the shapes of a and b are touching.
	Overlaps(a, b Handle) bool

	Position(h Handle) core.Vec2
	SetPosition(h Handle, p core.Vec2)
	Velocity(h Handle) core.Vec2
	SetVelocity(h Handle, v core.Vec2)

	ApplyImpulse(h Handle, v core.Vec2, mode ForceMode)
	// ApplyTorque adds torque for the next physics step. Positive is counter-clockwise.
	ApplyTorque(h Handle, torque float64)

	// Rotation is in degrees, counter-clockwise.
	Rotation(h Handle) float64
	SetRotation(h Handle, deg float64)

	SetActive(h Handle, active bool)
	IsActive(h Handle) bool
}

// Clip names a sound effect.
type Clip int

const (
	ClipExplosion Clip = iota // Booster
	ClipBounce                // Circle bumper
	ClipDrain                 // Ball lost
	ClipWarp                  // Teleporter
	ClipFlipper               // Flipper input
	ClipCoin                  // Coin collected
	clipCount
)

// Clips lists every clip in declaration order.
func Clips() []Clip {
	clips := make([]Clip, 0, clipCount)
	for c := Clip(0); c < clipCount; c++ {
		clips = append(clips, c)
	}
	return clips
}

// String returns the clip name used in configuration files.
func (c Clip) String() string {
	switch c {
	case ClipExplosion:
		return "explosion"
	case ClipBounce:
		return "bounce"
	case ClipDrain:
		return "drain"
	case ClipWarp:
		return "warp"
	case ClipFlipper:
		return "flipper"
	case ClipCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Audio is what the game needs from the sound engine.
type Audio interface {
	Play(c Clip)
	Stop(c Clip)
	IsPlaying(c Clip) bool
}

// Label names a text element on screen.
type Label int

const (
	LabelStatus Label = iota // Lives and points
	LabelPrompt              // Start/continue prompt
)

// Display receives text updates.
type Display interface {
	SetText(l Label, text string)
}

// Process lets the game end the program.
type Process interface {
	Quit()
}
