package core

// maxFrameTime caps a single frame's contribution to the accumulator so a
// stalled terminal does not trigger a burst of catch-up physics steps.
const maxFrameTime = 0.25

// FixedStepper converts variable frame times into a whole number of fixed
// physics steps, carrying the remainder to the next frame.
type FixedStepper struct {
	Step        float64 // Fixed step length in seconds
	accumulator float64
}

// NewFixedStepper creates a stepper running at rate steps per second.
func NewFixedStepper(rate int) *FixedStepper {
	if rate <= 0 {
		rate = 50
	}
	return &FixedStepper{Step: 1.0 / float64(rate)}
}

// Advance adds frameTime seconds and returns how many fixed steps are due.
func (s *FixedStepper) Advance(frameTime float64) int {
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	s.accumulator += frameTime

	n := 0
	for s.accumulator >= s.Step {
		s.accumulator -= s.Step
		n++
	}
	return n
}

// Reset drops any accumulated time.
func (s *FixedStepper) Reset() {
	s.accumulator = 0
}
