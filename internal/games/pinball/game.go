// Package pinball implements the pinball game loop: table rules, the round
// state machine, input handling and HUD text. Physics, audio, text display
// and process control are reached through the interfaces in ports.go.
package pinball

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
)

// Deps bundles the collaborators a Game talks to.
type Deps struct {
	Physics Physics
	Audio   Audio
	Display Display
	Process Process
	Logger  *log.Logger // Optional; nil discards
}

// Game owns one session on one table.
type Game struct {
	phys    Physics
	process Process
	reg     *EntityRegistry
	rules   config.RulesConfig
	sounds  *SoundBoard
	engine  *RuleEngine
	fsm     *StateMachine
	present *Presenter
	input   InputDispatcher
	logger  *log.Logger

	round     RoundState
	frames    uint64
	physTicks uint64
}

// New validates the entities and builds a game in the idle state.
func New(deps Deps, ents Entities, rules config.RulesConfig) (*Game, error) {
	if deps.Physics == nil || deps.Audio == nil || deps.Display == nil || deps.Process == nil {
		return nil, errors.New("pinball: new game: missing collaborator")
	}
	reg, err := NewRegistry(ents)
	if err != nil {
		return nil, fmt.Errorf("pinball: new game: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		phys:    deps.Physics,
		process: deps.Process,
		reg:     reg,
		rules:   rules,
		sounds:  NewSoundBoard(deps.Audio, DefaultCues()),
		present: NewPresenter(deps.Display),
		logger:  logger,
	}
	g.engine = NewRuleEngine(g.phys, reg, g.sounds, rules, &g.round, logger)
	g.fsm = NewStateMachine(g.phys, reg, g.sounds, rules, &g.round, g.engine, logger)
	g.input.game = g

	logger.Debug("game created",
		"coins", len(reg.Coins),
		"bumpers", len(reg.CircleBumpers),
		"spinners", len(reg.Spinners),
		"boosters", len(reg.Boosters),
		"teleporters", len(reg.Teleporters))
	return g, nil
}

// FixedUpdate runs the physics-rate rules. The host steps the physics
// world right after.
func (g *Game) FixedUpdate() {
	g.physTicks++
	g.engine.PhysicsRules()
}

// Update runs the frame-rate rules, the state machine and the HUD sync.
func (g *Game) Update(dt float64) {
	g.frames++
	g.engine.FrameRules(dt)
	g.fsm.Update()
	g.present.Sync(g.round, g.fsm.Prompt())
}

// Activate subscribes the game's input handlers on bus.
func (g *Game) Activate(bus *core.EventBus) Deactivate {
	return g.input.Activate(bus)
}

// Start launches a ball if the previous one has drained.
func (g *Game) Start() {
	g.fsm.StartOrContinue()
}

// FlipLeft kicks the left flipper up.
func (g *Game) FlipLeft() {
	g.phys.ApplyTorque(g.reg.LeftFlipper, g.rules.FlipperFlipTorque)
	g.sounds.Trigger(ClipFlipper)
}

// FlipRight kicks the right flipper up.
func (g *Game) FlipRight() {
	g.phys.ApplyTorque(g.reg.RightFlipper, -g.rules.FlipperFlipTorque)
	g.sounds.Trigger(ClipFlipper)
}

// Quit asks the host to end the program.
func (g *Game) Quit() {
	g.logger.Info("quit", "points", g.round.Points)
	g.process.Quit()
}

// State returns a copy of the round counters.
func (g *Game) State() RoundState {
	return g.round
}

// Drained reports whether the ball is below the drain line.
func (g *Game) Drained() bool {
	return g.fsm.Drained()
}

// Prompt returns the current prompt text.
func (g *Game) Prompt() string {
	return g.fsm.Prompt()
}

// Registry returns the resolved table entities.
func (g *Game) Registry() *EntityRegistry {
	return g.reg
}
