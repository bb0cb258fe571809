package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// Labels stores the text the game pushes to the HUD.
type Labels map[pinball.Label]string

// SetText implements pinball.Display.
func (l Labels) SetText(label pinball.Label, text string) {
	l[label] = text
}

// quitFlag implements pinball.Process by recording the request; the
// Bubble Tea model turns it into tea.Quit.
type quitFlag struct {
	requested bool
}

func (q *quitFlag) Quit() { q.requested = true }

// SessionOptions is everything needed to start a table.
type SessionOptions struct {
	Table   config.TableLayout
	Config  config.PinballConfig
	Runtime core.RuntimeConfig
	Audio   pinball.Audio // nil plays nothing
	Logger  *log.Logger
}

// Session runs one table: the physics world, the game and both clocks.
type Session struct {
	table      config.TableLayout
	world      *physics.World
	game       *pinball.Game
	bus        *core.EventBus
	labels     Labels
	quit       *quitFlag
	stepper    *core.FixedStepper
	difficulty *config.DifficultyManager
	deactivate pinball.Deactivate
	logger     *log.Logger
	ticks      int
}

// NewSession builds the world for the table and wires the game to it.
func NewSession(opts SessionOptions) (*Session, error) {
	if err := opts.Table.CheckRules(opts.Config.Rules); err != nil {
		return nil, fmt.Errorf("tui: new session: %w", err)
	}
	world, ents, err := physics.BuildTable(opts.Table, opts.Config.Physics)
	if err != nil {
		return nil, fmt.Errorf("tui: new session: %w", err)
	}

	audio := opts.Audio
	if audio == nil {
		audio = muted{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		table:      opts.Table,
		world:      world,
		bus:        core.NewEventBus(),
		labels:     make(Labels),
		quit:       &quitFlag{},
		stepper:    core.NewFixedStepper(opts.Runtime.PhysicsRate),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		logger:     logger,
	}

	game, err := pinball.New(pinball.Deps{
		Physics: world,
		Audio:   audio,
		Display: s.labels,
		Process: s.quit,
		Logger:  logger.WithPrefix("game"),
	}, ents, opts.Config.Rules)
	if err != nil {
		return nil, fmt.Errorf("tui: new session: %w", err)
	}
	s.game = game
	s.deactivate = game.Activate(s.bus)

	logger.Info("table loaded", "table", opts.Table.Name, "physics_hz", opts.Runtime.PhysicsRate)
	return s, nil
}

// Dispatch sends a player action to the game. It returns the number of
// handlers that ran.
func (s *Session) Dispatch(a core.Action) int {
	return s.bus.Dispatch(a)
}

// Frame advances the physics clock by however many fixed steps fit in dt,
// then runs the frame update once.
func (s *Session) Frame(dt float64) {
	steps := s.stepper.Advance(dt)
	for range steps {
		s.world.SetGravityScale(s.difficulty.GravityScale(s.game.State().Points, s.ticks))
		s.game.FixedUpdate()
		s.world.Step(s.stepper.Step)
		s.ticks++
	}
	s.game.Update(dt)
}

// Resume drops time accumulated while paused.
func (s *Session) Resume() {
	s.stepper.Reset()
}

// QuitRequested reports whether the game asked to end the program.
func (s *Session) QuitRequested() bool {
	return s.quit.requested
}

// Close unsubscribes the game's input handlers.
func (s *Session) Close() {
	if s.deactivate != nil {
		s.deactivate()
	}
}

// State summarizes the round for the host.
func (s *Session) State() core.GameState {
	r := s.game.State()
	return core.GameState{
		Score:   r.Points,
		Lives:   r.Lives,
		Playing: r.Started,
		Drained: s.game.Drained(),
	}
}

// Text returns the latest HUD label text.
func (s *Session) Text(l pinball.Label) string {
	return s.labels[l]
}

// Table returns the layout the session was built from.
func (s *Session) Table() config.TableLayout {
	return s.table
}

// World exposes the physics world for rendering.
func (s *Session) World() *physics.World {
	return s.world
}

// Game exposes the game for rendering.
func (s *Session) Game() *pinball.Game {
	return s.game
}

// muted is the audio used when no sound board is attached.
type muted struct{}

func (muted) Play(pinball.Clip)           {}
func (muted) Stop(pinball.Clip)           {}
func (muted) IsPlaying(pinball.Clip) bool { return false }
