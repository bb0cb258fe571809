package core

import "testing"

func TestFixedStepperAdvance(t *testing.T) {
	s := NewFixedStepper(8) // 0.125s steps

	if n := s.Advance(0.0625); n != 0 {
		t.Errorf("half a step should yield 0 steps, got %d", n)
	}
	if n := s.Advance(0.0625); n != 1 {
		t.Errorf("completing a step should yield 1 step, got %d", n)
	}
	if n := s.Advance(0.25); n != 2 {
		t.Errorf("two full steps should yield 2, got %d", n)
	}
	if s.accumulator != 0 {
		t.Errorf("accumulator should be empty, got %f", s.accumulator)
	}
}

func TestFixedStepperCapsFrameTime(t *testing.T) {
	s := NewFixedStepper(8)

	// 10 seconds of stall is capped at maxFrameTime (0.25s = 2 steps)
	if n := s.Advance(10); n != 2 {
		t.Errorf("stalled frame should be capped to 2 steps, got %d", n)
	}
	if n := s.Advance(-1); n != 0 {
		t.Errorf("negative frame time should yield no steps, got %d", n)
	}
}

func TestFixedStepperReset(t *testing.T) {
	s := NewFixedStepper(8)
	s.Advance(0.0625)
	s.Reset()
	if n := s.Advance(0.0625); n != 0 {
		t.Errorf("Reset should drop accumulated time, got %d steps", n)
	}
}

func TestNewFixedStepperDefaultRate(t *testing.T) {
	s := NewFixedStepper(0)
	if s.Step != 1.0/50 {
		t.Errorf("default step should be 1/50, got %f", s.Step)
	}
}
