package config

import (
	_ "embed"
)

//go:embed defaults/pinball.yaml
var defaultPinballYAML []byte

// DefaultPinballConfig returns the built-in pinball configuration.
// It matches defaults/pinball.yaml and is used when the embedded file fails to parse.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Physics: PhysicsConfig{
			Gravity:           6.0,
			BallMass:          0.05,
			Restitution:       0.45,
			BumperRestitution: 1.15,
			LinearDamping:     0.05,
			MaxSpeed:          18.0,
			FlipperInertia:    0.05,
			FlipperDamping:    2.0,
			TouchSkin:         0.02,
		},
		Rules: RulesConfig{
			DrainY:               -5.0,
			Launch:               Point{X: -3.3, Y: -3.3},
			CoinRespawnSeconds:   5.0,
			BoosterImpulse:       Point{X: 0.07, Y: 0},
			SpinnerStep:          0.7,
			FlipperRestoreTorque: 10.0,
			FlipperFlipTorque:    1000.0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			Volumes: map[string]float64{
				"explosion": 0.7,
				"bounce":    0.5,
				"drain":     0.8,
				"warp":      0.6,
				"flipper":   0.4,
				"coin":      0.6,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				GravityMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPinballYAML
}
