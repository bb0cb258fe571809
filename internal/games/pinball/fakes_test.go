package pinball

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
)

type fakeBody struct {
	pos      core.Vec2
	vel      core.Vec2
	radius   float64
	rot      float64
	inactive bool
	torque   float64
	impulses []core.Vec2
}

// fakePhysics treats every body as a circle.
type fakePhysics struct {
	bodies map[Handle]*fakeBody
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[Handle]*fakeBody)}
}

func (p *fakePhysics) add(h Handle, pos core.Vec2, radius float64) *fakeBody {
	b := &fakeBody{pos: pos, radius: radius}
	p.bodies[h] = b
	return b
}

func (p *fakePhysics) body(h Handle) *fakeBody {
	b, ok := p.bodies[h]
	if !ok {
		panic(fmt.Sprintf("unknown handle %d", h))
	}
	return b
}

func (p *fakePhysics) Overlaps(a, b Handle) bool {
	ba, bb := p.body(a), p.body(b)
	return ba.pos.Sub(bb.pos).Len() < ba.radius+bb.radius
}

func (p *fakePhysics) Position(h Handle) core.Vec2       { return p.body(h).pos }
func (p *fakePhysics) SetPosition(h Handle, v core.Vec2) { p.body(h).pos = v }
func (p *fakePhysics) Velocity(h Handle) core.Vec2       { return p.body(h).vel }
func (p *fakePhysics) SetVelocity(h Handle, v core.Vec2) { p.body(h).vel = v }
func (p *fakePhysics) Rotation(h Handle) float64         { return p.body(h).rot }
func (p *fakePhysics) SetRotation(h Handle, deg float64) { p.body(h).rot = deg }
func (p *fakePhysics) SetActive(h Handle, active bool)   { p.body(h).inactive = !active }
func (p *fakePhysics) IsActive(h Handle) bool            { return !p.body(h).inactive }

func (p *fakePhysics) ApplyImpulse(h Handle, v core.Vec2, _ ForceMode) {
	b := p.body(h)
	b.impulses = append(b.impulses, v)
}

func (p *fakePhysics) ApplyTorque(h Handle, torque float64) {
	p.body(h).torque += torque
}

type fakeAudio struct {
	playing map[Clip]bool
	calls   []string
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{playing: make(map[Clip]bool)}
}

func (a *fakeAudio) Play(c Clip) {
	a.playing[c] = true
	a.calls = append(a.calls, "play "+c.String())
}

func (a *fakeAudio) Stop(c Clip) {
	a.playing[c] = false
	a.calls = append(a.calls, "stop "+c.String())
}

func (a *fakeAudio) IsPlaying(c Clip) bool { return a.playing[c] }

func (a *fakeAudio) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeDisplay struct {
	text map[Label]string
}

func (d *fakeDisplay) SetText(l Label, s string) {
	if d.text == nil {
		d.text = make(map[Label]string)
	}
	d.text[l] = s
}

type fakeProcess struct {
	quits int
}

func (p *fakeProcess) Quit() { p.quits++ }

// Handles of the test table.
const (
	hBall Handle = iota + 1
	hLeftFlipper
	hRightFlipper
	hCoin1
	hCoin3
	hCoin5
	hBumper
	hSpinner
	hSpinnerMirrored
	hBooster
	hTeleIn
	hTeleOut
	hLaunchCoin
)

var (
	posTrough = core.V(0, -5.8)
	posAbove  = core.V(0, 0)
)

type harness struct {
	game    *Game
	phys    *fakePhysics
	audio   *fakeAudio
	display *fakeDisplay
	process *fakeProcess
	bus     *core.EventBus
	rules   config.RulesConfig
}

func testEntities() Entities {
	return Entities{
		Ball:         hBall,
		LeftFlipper:  hLeftFlipper,
		RightFlipper: hRightFlipper,
		Coins: []CoinSpec{
			{Body: hCoin1, Sprite: "coin1"},
			{Body: hCoin3, Sprite: "coin3"},
			{Body: hCoin5, Sprite: "coin5"},
			{Body: hLaunchCoin, Sprite: "coin1"},
		},
		CircleBumpers: []Handle{hBumper},
		Spinners: []SpinnerSpec{
			{Body: hSpinner},
			{Body: hSpinnerMirrored, Mirrored: true},
		},
		Boosters:    []Handle{hBooster},
		TeleportIn:  []Handle{hTeleIn},
		TeleportOut: []Handle{hTeleOut},
	}
}

func newHarness(t testing.TB) *harness {
	t.Helper()
	phys := newFakePhysics()
	phys.add(hBall, posTrough, 0.15)
	phys.add(hLeftFlipper, core.V(-2.2, -4.2), 0)
	phys.add(hRightFlipper, core.V(2.2, -4.2), 0)
	phys.add(hCoin1, core.V(-3, 2), 0.25)
	phys.add(hCoin3, core.V(0, 2), 0.25)
	phys.add(hCoin5, core.V(3, 2), 0.25)
	phys.add(hBumper, core.V(-2, 5), 0.5)
	phys.add(hSpinner, core.V(-4, 6), 0)
	phys.add(hSpinnerMirrored, core.V(4, 6), 0)
	phys.add(hBooster, core.V(-4.8, -0.6), 0.3)
	phys.add(hTeleIn, core.V(5.3, -1.4), 0.3)
	phys.add(hTeleOut, core.V(0, 7.2), 0)
	phys.add(hLaunchCoin, core.V(-3.3, -3.3), 0.25)

	h := &harness{
		phys:    phys,
		audio:   newFakeAudio(),
		display: &fakeDisplay{},
		process: &fakeProcess{},
		bus:     core.NewEventBus(),
		rules:   config.DefaultPinballConfig().Rules,
	}
	g, err := New(Deps{
		Physics: h.phys,
		Audio:   h.audio,
		Display: h.display,
		Process: h.process,
	}, testEntities(), h.rules)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.game = g
	return h
}

func (h *harness) moveBall(p core.Vec2) {
	h.phys.SetPosition(hBall, p)
}
