package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

func vec(p config.Point) core.Vec2 {
	return core.V(p.X, p.Y)
}

// BuildTable creates a world holding every object in layout and returns
// the handles the game needs.
func BuildTable(layout config.TableLayout, cfg config.PhysicsConfig) (*World, pinball.Entities, error) {
	if err := layout.Validate(); err != nil {
		return nil, pinball.Entities{}, fmt.Errorf("physics: build table: %w", err)
	}

	w := NewWorld(cfg, layout.Bounds)
	var ents pinball.Entities

	ents.Ball = w.Add(Body{
		Kind:   KindBall,
		Pos:    vec(layout.Ball.Start),
		Radius: layout.Ball.Radius,
	})

	for _, s := range layout.Walls {
		w.Add(Body{Kind: KindWall, Pos: vec(s.From), End: vec(s.To)})
	}

	ents.LeftFlipper = w.Add(flipper(layout.Flippers.Left))
	ents.RightFlipper = w.Add(flipper(layout.Flippers.Right))

	for _, c := range layout.Coins {
		h := w.Add(Body{Kind: KindCoin, Pos: vec(c.At), Radius: c.Radius})
		ents.Coins = append(ents.Coins, pinball.CoinSpec{Body: h, Sprite: c.Sprite})
	}

	for _, c := range layout.CircleBumpers {
		ents.CircleBumpers = append(ents.CircleBumpers,
			w.Add(Body{Kind: KindBumper, Pos: vec(c.At), Radius: c.Radius}))
	}

	for _, s := range layout.Spinners {
		h := w.Add(Body{Kind: KindSpinner, Pos: vec(s.At), Length: s.Length})
		ents.Spinners = append(ents.Spinners, pinball.SpinnerSpec{Body: h, Mirrored: s.Mirrored})
	}

	for _, b := range layout.Boosters {
		ents.Boosters = append(ents.Boosters,
			w.Add(Body{Kind: KindBooster, Pos: vec(b.At), Width: b.Width, Height: b.Height}))
	}

	for _, t := range layout.Teleporters.In {
		ents.TeleportIn = append(ents.TeleportIn,
			w.Add(Body{Kind: KindTeleporter, Pos: vec(t.At), Radius: t.Radius}))
	}
	for _, p := range layout.Teleporters.Out {
		ents.TeleportOut = append(ents.TeleportOut, w.Add(Body{Kind: KindMarker, Pos: vec(p)}))
	}

	return w, ents, nil
}

func flipper(f config.FlipperLayout) Body {
	return Body{
		Kind:     KindFlipper,
		Pos:      vec(f.Pivot),
		Length:   f.Length,
		Rotation: f.Rest,
		MinAngle: f.MinAngle,
		MaxAngle: f.MaxAngle,
	}
}
