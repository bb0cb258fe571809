package pinball

import "math"

// Snapshot is a flat copy of the observable game state.
// Positions are rounded to millimetres so hashes are stable.
type Snapshot struct {
	Frames     uint64
	PhysTicks  uint64
	Started    bool
	Lives      int
	Points     int
	Prompt     string
	DrainLatch bool

	BallX, BallY   int
	BallVX, BallVY int

	CoinActive  []bool
	CoinElapsed []int // Milliseconds since collected
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	pos := g.phys.Position(g.reg.Ball)
	vel := g.phys.Velocity(g.reg.Ball)

	active := make([]bool, len(g.reg.Coins))
	elapsed := make([]int, len(g.reg.Coins))
	for i, c := range g.reg.Coins {
		active[i] = g.phys.IsActive(c.Body)
		elapsed[i] = milli(g.engine.Respawn().Elapsed(i))
	}

	return Snapshot{
		Frames:      g.frames,
		PhysTicks:   g.physTicks,
		Started:     g.round.Started,
		Lives:       g.round.Lives,
		Points:      g.round.Points,
		Prompt:      g.fsm.Prompt(),
		DrainLatch:  g.sounds.Latched(ClipDrain),
		BallX:       milli(pos.X),
		BallY:       milli(pos.Y),
		BallVX:      milli(vel.X),
		BallVY:      milli(vel.Y),
		CoinActive:  active,
		CoinElapsed: elapsed,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + snap.PhysTicks
	h = h*31 + boolBit(snap.Started)
	h = h*31 + uint64(snap.Lives)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Points) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.DrainLatch)
	for _, r := range snap.Prompt {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.BallX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY) //#nosec G115 -- hash computation
	for i, a := range snap.CoinActive {
		h = h*31 + boolBit(a)
		h = h*31 + uint64(snap.CoinElapsed[i]) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
