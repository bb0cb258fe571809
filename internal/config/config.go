// Package config provides YAML-based configuration loading and difficulty
// management for the pinball table.
package config

// PinballConfig contains all tunable configuration for a pinball session.
type PinballConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Rules      RulesConfig      `yaml:"rules"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Point is a 2D coordinate in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig tunes the reference physics world.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`            // Downward acceleration, world units/s^2
	BallMass          float64 `yaml:"ball_mass"`          // Impulses are divided by this
	Restitution       float64 `yaml:"restitution"`        // Bounce off walls and flippers
	BumperRestitution float64 `yaml:"bumper_restitution"` // Bounce off circle bumpers (>1 kicks)
	LinearDamping     float64 `yaml:"linear_damping"`     // Fraction of velocity lost per second
	MaxSpeed          float64 `yaml:"max_speed"`          // Ball speed cap, world units/s
	FlipperInertia    float64 `yaml:"flipper_inertia"`    // Torque divisor for flipper bodies
	FlipperDamping    float64 `yaml:"flipper_damping"`    // Fraction of angular velocity lost per second
	TouchSkin         float64 `yaml:"touch_skin"`         // Extra distance that still counts as touching
}

// RulesConfig holds the constants used by the rule engine and state machine.
type RulesConfig struct {
	DrainY               float64 `yaml:"drain_y"`                // Ball below this Y is drained
	Launch               Point   `yaml:"launch"`                 // Ball position at the start of each life
	CoinRespawnSeconds   float64 `yaml:"coin_respawn_seconds"`   // Idle time before a coin reappears
	BoosterImpulse       Point   `yaml:"booster_impulse"`        // Impulse applied per physics tick of booster overlap
	SpinnerStep          float64 `yaml:"spinner_step"`           // Degrees per physics tick
	FlipperRestoreTorque float64 `yaml:"flipper_restore_torque"` // Torque pulling flippers back each tick
	FlipperFlipTorque    float64 `yaml:"flipper_flip_torque"`    // Torque applied on flip input
}

// AudioConfig configures the sound board.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"` // 0.0 - 1.0
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"` // Per-clip volume by clip name
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // Added to gravity scale at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
