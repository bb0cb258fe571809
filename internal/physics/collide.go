package physics

import (
	"math"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// closestOnSegment returns the point of segment ab nearest to p.
func closestOnSegment(p, a, b core.Vec2) core.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := core.ClampF(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Scale(t))
}

// closestInBox returns the point of the axis-aligned box nearest to p.
func closestInBox(p, center core.Vec2, w, h float64) core.Vec2 {
	return core.V(
		core.ClampF(p.X, center.X-w/2, center.X+w/2),
		core.ClampF(p.Y, center.Y-h/2, center.Y+h/2),
	)
}

// nearest returns the point of b's shape closest to p.
func nearest(b *Body, p core.Vec2) core.Vec2 {
	switch b.Kind {
	case KindWall, KindFlipper, KindSpinner:
		s, e := b.Segment()
		return closestOnSegment(p, s, e)
	case KindBooster:
		return closestInBox(p, b.Pos, b.Width, b.Height)
	default:
		return b.Pos
	}
}

// reach is how far from its nearest point a body's shape extends.
func reach(b *Body) float64 {
	switch b.Kind {
	case KindBall, KindBumper, KindCoin, KindTeleporter:
		return b.Radius
	default:
		return 0
	}
}

// touching reports whether two shapes are within skin of each other.
func touching(a, b *Body, skin float64) bool {
	// Resolve against whichever side has the richer shape.
	if reach(b) > 0 || b.Kind == KindMarker {
		a, b = b, a
	}
	p := nearest(b, a.Pos)
	return a.Pos.Sub(p).Len() < reach(a)+reach(b)+skin
}

// resolve pushes the ball out of a solid body and reflects its velocity.
// It reports whether there was contact.
func resolve(ball, b *Body, restitution float64) bool {
	p := nearest(b, ball.Pos)
	delta := ball.Pos.Sub(p)
	dist := delta.Len()
	minDist := ball.Radius + reach(b)
	if dist >= minDist {
		return false
	}

	var n core.Vec2
	if dist > 0 {
		n = delta.Scale(1 / dist)
	} else {
		s, e := b.Segment()
		n = e.Sub(s).Perp().Norm()
		if n.IsZero() {
			n = core.V(0, 1)
		}
	}
	ball.Pos = ball.Pos.Add(n.Scale(minDist - dist))

	surface := b.surfaceVelocity(p)
	rel := ball.Vel.Sub(surface)
	vn := rel.Dot(n)
	if vn < 0 {
		rel = rel.Sub(n.Scale((1 + restitution) * vn))
	}
	ball.Vel = rel.Add(surface)
	return true
}
