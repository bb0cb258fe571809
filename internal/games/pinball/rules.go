package pinball

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
)

// RuleEngine applies the per-contact table rules. Frame rules run once per
// rendered frame, physics rules once per fixed physics step.
type RuleEngine struct {
	phys    Physics
	reg     *EntityRegistry
	sounds  *SoundBoard
	respawn *RespawnTracker
	rules   config.RulesConfig
	round   *RoundState
	logger  *log.Logger
}

// NewRuleEngine wires the rules to their collaborators. Coin points are
// credited to round.
func NewRuleEngine(phys Physics, reg *EntityRegistry, sounds *SoundBoard, rules config.RulesConfig, round *RoundState, logger *log.Logger) *RuleEngine {
	return &RuleEngine{
		phys:    phys,
		reg:     reg,
		sounds:  sounds,
		respawn: NewRespawnTracker(len(reg.Coins), rules.CoinRespawnSeconds),
		rules:   rules,
		round:   round,
		logger:  logger,
	}
}

// Respawn exposes the coin respawn counters.
func (e *RuleEngine) Respawn() *RespawnTracker {
	return e.respawn
}

// FrameRules runs teleporters, then coins, then circle bumpers.
func (e *RuleEngine) FrameRules(dt float64) {
	e.teleport()
	e.coins(dt)
	e.bumpers()
}

// PhysicsRules runs flipper restoring torque, then boosters, then spinners.
func (e *RuleEngine) PhysicsRules() {
	e.phys.ApplyTorque(e.reg.RightFlipper, e.rules.FlipperRestoreTorque)
	e.phys.ApplyTorque(e.reg.LeftFlipper, -e.rules.FlipperRestoreTorque)

	ball := e.reg.Ball
	impulse := core.V(e.rules.BoosterImpulse.X, e.rules.BoosterImpulse.Y)
	for _, b := range e.reg.Boosters {
		if !e.phys.Overlaps(ball, b) {
			continue
		}
		e.phys.ApplyImpulse(ball, impulse, ForceModeImpulse)
		e.sounds.Trigger(ClipExplosion)
	}

	for _, s := range e.reg.Spinners {
		e.phys.SetRotation(s.Body, e.phys.Rotation(s.Body)+s.Direction*e.rules.SpinnerStep)
	}
}

func (e *RuleEngine) teleport() {
	ball := e.reg.Ball
	for i, t := range e.reg.Teleporters {
		if !e.phys.Overlaps(ball, t.In) {
			continue
		}
		e.phys.SetPosition(ball, e.phys.Position(t.Out))
		e.phys.SetVelocity(ball, core.Vec2{})
		e.sounds.Trigger(ClipWarp)
		e.logger.Debug("teleport", "pair", i)
		// One jump per frame, even if the exit lies on another entry.
		return
	}
}

func (e *RuleEngine) coins(dt float64) {
	ball := e.reg.Ball
	for i, c := range e.reg.Coins {
		if !e.phys.IsActive(c.Body) || !e.phys.Overlaps(ball, c.Body) {
			continue
		}
		e.phys.SetActive(c.Body, false)
		e.round.Points += int(c.Tier)
		e.sounds.Trigger(ClipCoin)
		e.logger.Debug("coin collected", "coin", i, "tier", int(c.Tier), "points", e.round.Points)
	}

	for i, c := range e.reg.Coins {
		if e.phys.IsActive(c.Body) {
			continue
		}
		if e.respawn.Tick(i, dt) {
			e.phys.SetActive(c.Body, true)
			e.logger.Debug("coin respawned", "coin", i)
		}
	}
}

func (e *RuleEngine) bumpers() {
	ball := e.reg.Ball
	for _, b := range e.reg.CircleBumpers {
		if e.phys.Overlaps(ball, b) {
			e.sounds.Trigger(ClipBounce)
		}
	}
}

// ReactivateTouching turns back on every coin the ball currently overlaps
// and clears its respawn counter.
func (e *RuleEngine) ReactivateTouching() {
	ball := e.reg.Ball
	for i, c := range e.reg.Coins {
		if e.phys.Overlaps(ball, c.Body) {
			e.phys.SetActive(c.Body, true)
			e.respawn.Reset(i)
		}
	}
}
