package pinball

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
)

// MaxLives is the number of balls per round.
const MaxLives = 3

// Prompt texts.
const (
	PromptStart    = "PRESS 'SPACE' TO START"
	PromptRestart  = "PRESS 'SPACE' TO RESTART"
	PromptContinue = "PRESS 'SPACE' TO CONTINUE"
)

// RoundState holds the counters of the current round.
// Lives is 0 whenever Started is false after a round has ended.
type RoundState struct {
	Started bool
	Lives   int
	Points  int
}

func (r RoundState) String() string {
	return fmt.Sprintf("started=%t lives=%d points=%d", r.Started, r.Lives, r.Points)
}

// StateMachine moves the round between idle and playing and watches the drain.
type StateMachine struct {
	phys   Physics
	reg    *EntityRegistry
	sounds *SoundBoard
	rules  config.RulesConfig
	round  *RoundState
	coins  *RuleEngine
	logger *log.Logger
}

// NewStateMachine creates a state machine operating on round.
func NewStateMachine(phys Physics, reg *EntityRegistry, sounds *SoundBoard, rules config.RulesConfig, round *RoundState, coins *RuleEngine, logger *log.Logger) *StateMachine {
	return &StateMachine{
		phys:   phys,
		reg:    reg,
		sounds: sounds,
		rules:  rules,
		round:  round,
		coins:  coins,
		logger: logger,
	}
}

// Drained reports whether the ball is below the drain line.
func (m *StateMachine) Drained() bool {
	return m.phys.Position(m.reg.Ball).Y < m.rules.DrainY
}

// StartOrContinue launches a new ball. It does nothing unless the ball is
// drained, and reports whether a ball was launched.
func (m *StateMachine) StartOrContinue() bool {
	if !m.Drained() {
		return false
	}

	ball := m.reg.Ball
	m.phys.SetPosition(ball, core.V(m.rules.Launch.X, m.rules.Launch.Y))
	m.phys.SetVelocity(ball, core.Vec2{})

	if m.round.Started {
		m.round.Lives--
		if m.round.Lives <= 0 {
			m.round.Lives = 0
			m.round.Started = false
			m.logger.Info("round over", "points", m.round.Points)
		} else {
			m.logger.Info("life lost", "lives", m.round.Lives)
		}
		return true
	}

	m.round.Started = true
	m.round.Lives = MaxLives
	m.round.Points = 0
	m.coins.ReactivateTouching()
	m.logger.Info("round started", "lives", m.round.Lives)
	return true
}

// Update fires the drain cue on the frame the ball enters the drain.
func (m *StateMachine) Update() {
	if m.sounds.Edge(ClipDrain, m.Drained()) {
		m.logger.Debug("drain")
	}
}

// Prompt returns the text shown while waiting for the player.
func (m *StateMachine) Prompt() string {
	if !m.Drained() {
		return ""
	}
	switch {
	case m.round.Lives > 0:
		return PromptContinue
	case m.round.Points > 0:
		return PromptRestart
	default:
		return PromptStart
	}
}
