package pinball

// RespawnTracker counts how long each coin has been collected and decides
// when it comes back.
type RespawnTracker struct {
	after   float64
	elapsed []float64
}

// NewRespawnTracker tracks n coins that respawn once idle for longer than after seconds.
func NewRespawnTracker(n int, after float64) *RespawnTracker {
	return &RespawnTracker{
		after:   after,
		elapsed: make([]float64, n),
	}
}

// Tick adds dt to coin i's idle time. It returns true, and zeroes the
// counter, once the idle time exceeds the respawn delay.
func (r *RespawnTracker) Tick(i int, dt float64) bool {
	r.elapsed[i] += dt
	if r.elapsed[i] > r.after {
		r.elapsed[i] = 0
		return true
	}
	return false
}

// Reset zeroes coin i's idle time.
func (r *RespawnTracker) Reset(i int) {
	r.elapsed[i] = 0
}

// Elapsed returns coin i's idle time in seconds.
func (r *RespawnTracker) Elapsed(i int) float64 {
	return r.elapsed[i]
}

// Len returns the number of tracked coins.
func (r *RespawnTracker) Len() int {
	return len(r.elapsed)
}
