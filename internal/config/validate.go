package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every PinballConfig validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidTable is wrapped by every TableLayout validation failure.
	ErrInvalidTable = errors.New("invalid table")
)

// CoinSprites lists the coin sprite names a table may use.
var CoinSprites = []string{"coin1", "coin3", "coin5"}

// Validate checks that the configuration is usable.
func (c PinballConfig) Validate() error {
	switch {
	case c.Physics.BallMass <= 0:
		return fmt.Errorf("%w: physics.ball_mass must be positive", ErrInvalidConfig)
	case c.Physics.FlipperInertia <= 0:
		return fmt.Errorf("%w: physics.flipper_inertia must be positive", ErrInvalidConfig)
	case c.Physics.MaxSpeed <= 0:
		return fmt.Errorf("%w: physics.max_speed must be positive", ErrInvalidConfig)
	case c.Rules.CoinRespawnSeconds <= 0:
		return fmt.Errorf("%w: rules.coin_respawn_seconds must be positive", ErrInvalidConfig)
	case c.Rules.Launch.Y <= c.Rules.DrainY:
		return fmt.Errorf("%w: rules.launch must be above rules.drain_y", ErrInvalidConfig)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be within [0, 1]", ErrInvalidConfig)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks a table layout for configuration defects.
func (t TableLayout) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTable)
	}
	if t.Bounds.Width() <= 0 || t.Bounds.Height() <= 0 {
		return fmt.Errorf("%w: %s: empty bounds", ErrInvalidTable, t.Name)
	}
	if t.Ball.Radius <= 0 {
		return fmt.Errorf("%w: %s: ball radius must be positive", ErrInvalidTable, t.Name)
	}
	if t.Flippers.Left.Length <= 0 || t.Flippers.Right.Length <= 0 {
		return fmt.Errorf("%w: %s: flipper length must be positive", ErrInvalidTable, t.Name)
	}
	for _, f := range []FlipperLayout{t.Flippers.Left, t.Flippers.Right} {
		if f.MinAngle > f.MaxAngle || f.Rest < f.MinAngle || f.Rest > f.MaxAngle {
			return fmt.Errorf("%w: %s: flipper rest angle outside its limits", ErrInvalidTable, t.Name)
		}
	}
	for i, c := range t.Coins {
		if c.Radius <= 0 {
			return fmt.Errorf("%w: %s: coin %d radius must be positive", ErrInvalidTable, t.Name, i)
		}
		if !knownSprite(c.Sprite) {
			return fmt.Errorf("%w: %s: coin %d has unknown sprite %q", ErrInvalidTable, t.Name, i, c.Sprite)
		}
	}
	for i, b := range t.CircleBumpers {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: %s: circle bumper %d radius must be positive", ErrInvalidTable, t.Name, i)
		}
	}
	for i, s := range t.Spinners {
		if s.Length <= 0 {
			return fmt.Errorf("%w: %s: spinner %d length must be positive", ErrInvalidTable, t.Name, i)
		}
	}
	for i, b := range t.Boosters {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: %s: booster %d must have positive size", ErrInvalidTable, t.Name, i)
		}
	}
	if len(t.Teleporters.In) != len(t.Teleporters.Out) {
		return fmt.Errorf("%w: %s: %d teleporter entries but %d exits",
			ErrInvalidTable, t.Name, len(t.Teleporters.In), len(t.Teleporters.Out))
	}
	return nil
}

// CheckRules reports table geometry that cannot work with the given rules:
// a ball resting on the floor must sit below the drain line, and the
// launch point must lie inside the table.
func (t TableLayout) CheckRules(r RulesConfig) error {
	if floor := t.Bounds.MinY + t.Ball.Radius; floor >= r.DrainY {
		return fmt.Errorf("%w: %s: resting ball height %.2f is not below drain_y %.2f",
			ErrInvalidTable, t.Name, floor, r.DrainY)
	}
	if !t.Bounds.Contains(r.Launch) {
		return fmt.Errorf("%w: %s: launch point (%.2f, %.2f) is outside the table",
			ErrInvalidTable, t.Name, r.Launch.X, r.Launch.Y)
	}
	return nil
}

func knownSprite(s string) bool {
	for _, known := range CoinSprites {
		if s == known {
			return true
		}
	}
	return false
}
