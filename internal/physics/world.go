package physics

import (
	"math"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

const maxSubsteps = 8

var _ pinball.Physics = (*World)(nil)

// World holds every body on the table. It is not safe for concurrent use.
type World struct {
	cfg          config.PhysicsConfig
	bounds       config.Bounds
	bodies       []*Body
	ball         pinball.Handle
	gravityScale float64
}

// NewWorld creates an empty world.
func NewWorld(cfg config.PhysicsConfig, bounds config.Bounds) *World {
	return &World{
		cfg:          cfg,
		bounds:       bounds,
		gravityScale: 1,
	}
}

// Add inserts b and returns its handle. The first ball added becomes the
// dynamic body stepped by Step.
func (w *World) Add(b Body) pinball.Handle {
	b.Handle = pinball.Handle(len(w.bodies) + 1)
	b.Active = true
	w.bodies = append(w.bodies, &b)
	if b.Kind == KindBall && w.ball == pinball.NoHandle {
		w.ball = b.Handle
	}
	return b.Handle
}

func (w *World) get(h pinball.Handle) *Body {
	i := int(h) - 1
	if i < 0 || i >= len(w.bodies) {
		return nil
	}
	return w.bodies[i]
}

// Body returns a copy of the body behind h.
func (w *World) Body(h pinball.Handle) (Body, bool) {
	b := w.get(h)
	if b == nil {
		return Body{}, false
	}
	return *b, true
}

// Bodies returns copies of all bodies in handle order.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = *b
	}
	return out
}

// Bounds returns the table extent.
func (w *World) Bounds() config.Bounds {
	return w.bounds
}

// Ball returns the handle of the dynamic ball.
func (w *World) Ball() pinball.Handle {
	return w.ball
}

// SetGravityScale multiplies gravity. Values <= 0 reset it to 1.
func (w *World) SetGravityScale(s float64) {
	if s <= 0 {
		s = 1
	}
	w.gravityScale = s
}

// GravityScale returns the current gravity multiplier.
func (w *World) GravityScale() float64 {
	return w.gravityScale
}

// Overlaps reports whether the shapes of a and b touch. Active flags are ignored.
func (w *World) Overlaps(a, b pinball.Handle) bool {
	ba, bb := w.get(a), w.get(b)
	if ba == nil || bb == nil || ba == bb {
		return false
	}
	return touching(ba, bb, w.cfg.TouchSkin)
}

func (w *World) Position(h pinball.Handle) core.Vec2 {
	if b := w.get(h); b != nil {
		return b.Pos
	}
	return core.Vec2{}
}

func (w *World) SetPosition(h pinball.Handle, p core.Vec2) {
	if b := w.get(h); b != nil {
		b.Pos = p
		b.resting = false
	}
}

func (w *World) Velocity(h pinball.Handle) core.Vec2 {
	if b := w.get(h); b != nil {
		return b.Vel
	}
	return core.Vec2{}
}

func (w *World) SetVelocity(h pinball.Handle, v core.Vec2) {
	if b := w.get(h); b != nil {
		b.Vel = v
		if !v.IsZero() {
			b.resting = false
		}
	}
}

// ApplyImpulse changes the body's velocity by v/mass immediately, or
// queues v as a force for the next Step.
func (w *World) ApplyImpulse(h pinball.Handle, v core.Vec2, mode pinball.ForceMode) {
	b := w.get(h)
	if b == nil || b.Kind != KindBall {
		return
	}
	if mode == pinball.ForceModeImpulse {
		b.Vel = b.Vel.Add(v.Scale(1 / w.mass()))
		b.resting = false
		return
	}
	b.force = b.force.Add(v)
}

// ApplyTorque queues torque for the next Step. Only flippers respond.
func (w *World) ApplyTorque(h pinball.Handle, torque float64) {
	if b := w.get(h); b != nil && b.Kind == KindFlipper {
		b.torque += torque
	}
}

func (w *World) Rotation(h pinball.Handle) float64 {
	if b := w.get(h); b != nil {
		return b.Rotation
	}
	return 0
}

func (w *World) SetRotation(h pinball.Handle, deg float64) {
	if b := w.get(h); b != nil {
		b.Rotation = deg
	}
}

// SetActive enables or disables collisions for a body.
func (w *World) SetActive(h pinball.Handle, active bool) {
	if b := w.get(h); b != nil {
		b.Active = active
	}
}

func (w *World) IsActive(h pinball.Handle) bool {
	if b := w.get(h); b != nil {
		return b.Active
	}
	return false
}

func (w *World) mass() float64 {
	if w.cfg.BallMass <= 0 {
		return 1
	}
	return w.cfg.BallMass
}

// Step advances the world by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.Kind == KindFlipper {
			w.stepFlipper(b, dt)
		}
	}
	if ball := w.get(w.ball); ball != nil && ball.Active {
		w.stepBall(ball, dt)
	}
}

func (w *World) stepFlipper(b *Body, dt float64) {
	inertia := w.cfg.FlipperInertia
	if inertia <= 0 {
		inertia = 1
	}
	b.AngVel += b.torque / inertia * dt
	b.torque = 0
	b.AngVel *= math.Max(0, 1-w.cfg.FlipperDamping*dt)
	b.Rotation += b.AngVel * dt

	if b.Rotation < b.MinAngle {
		b.Rotation = b.MinAngle
		b.AngVel = 0
	} else if b.Rotation > b.MaxAngle {
		b.Rotation = b.MaxAngle
		b.AngVel = 0
	}
}

func (w *World) stepBall(ball *Body, dt float64) {
	if !ball.force.IsZero() {
		ball.Vel = ball.Vel.Add(ball.force.Scale(dt / w.mass()))
		ball.force = core.Vec2{}
		ball.resting = false
	}
	if ball.resting {
		return
	}

	ball.Vel.Y -= w.cfg.Gravity * w.gravityScale * dt
	ball.Vel = ball.Vel.Scale(math.Max(0, 1-w.cfg.LinearDamping*dt))
	if speed := ball.Vel.Len(); w.cfg.MaxSpeed > 0 && speed > w.cfg.MaxSpeed {
		ball.Vel = ball.Vel.Scale(w.cfg.MaxSpeed / speed)
	}

	travel := ball.Vel.Len() * dt
	steps := 1
	if ball.Radius > 0 {
		steps = int(math.Ceil(travel / (ball.Radius / 2)))
	}
	steps = core.Clamp(steps, 1, maxSubsteps)
	h := dt / float64(steps)

	for range steps {
		ball.Pos = ball.Pos.Add(ball.Vel.Scale(h))
		for _, b := range w.bodies {
			if b == ball || !b.Active || !b.Solid() {
				continue
			}
			e := w.cfg.Restitution
			if b.Kind == KindBumper {
				e = w.cfg.BumperRestitution
			}
			resolve(ball, b, e)
		}
		w.keepInBounds(ball)
		if ball.resting {
			return
		}
	}
}

// keepInBounds stops the ball on the floor of the table and keeps it
// between the side edges.
func (w *World) keepInBounds(ball *Body) {
	r := ball.Radius
	if ball.Pos.X < w.bounds.MinX+r {
		ball.Pos.X = w.bounds.MinX + r
		ball.Vel.X = math.Abs(ball.Vel.X) * w.cfg.Restitution
	} else if ball.Pos.X > w.bounds.MaxX-r {
		ball.Pos.X = w.bounds.MaxX - r
		ball.Vel.X = -math.Abs(ball.Vel.X) * w.cfg.Restitution
	}
	if ball.Pos.Y > w.bounds.MaxY-r {
		ball.Pos.Y = w.bounds.MaxY - r
		ball.Vel.Y = -math.Abs(ball.Vel.Y) * w.cfg.Restitution
	}
	if ball.Pos.Y <= w.bounds.MinY+r {
		ball.Pos.Y = w.bounds.MinY + r
		ball.Vel = core.Vec2{}
		ball.resting = true
	}
}
