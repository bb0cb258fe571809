package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose pitch moves linearly from one frequency to
// another over its lifetime, with an exponential decay envelope.
type sweep struct {
	wave     Wave
	from, to float64
	decay    float64 // Amplitude falls by e every 1/decay seconds
	attack   int     // Samples of linear fade-in
	total    int
	pos      int
	phase    float64
	rate     beep.SampleRate
	noise    uint32
}

func newSweep(wave Wave, from, to float64, d time.Duration, decay float64, rate beep.SampleRate) *sweep {
	return &sweep{
		wave:   wave,
		from:   from,
		to:     to,
		decay:  decay,
		attack: rate.N(3 * time.Millisecond),
		total:  rate.N(d),
		rate:   rate,
		noise:  0x9e3779b9,
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		frac := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*frac

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*s.phase - 1
		case WaveNoise:
			// xorshift keeps the noise reproducible
			s.noise ^= s.noise << 13
			s.noise ^= s.noise >> 17
			s.noise ^= s.noise << 5
			v = float64(s.noise)/float64(math.MaxUint32)*2 - 1
		}

		t := float64(s.pos) / float64(s.rate)
		amp := math.Exp(-s.decay * t)
		if s.pos < s.attack {
			amp *= float64(s.pos) / float64(s.attack)
		}
		v *= amp

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fadeOut linearly silences the last part of a finite streamer.
type fadeOut struct {
	beep.Streamer
	total, release, pos int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			g := float64(f.total-f.pos) / float64(f.release)
			if g < 0 {
				g = 0
			}
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

// tone is a plain sine note of length d.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequencies above Nyquist fall back to silence of the same length.
		return beep.Silence(rate.N(d))
	}
	n := rate.N(d)
	return &fadeOut{Streamer: beep.Take(n, sine), total: n, release: n / 2}
}

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Synthesize builds a fresh streamer for clip c.
func Synthesize(c pinball.Clip, rate beep.SampleRate) beep.Streamer {
	switch c {
	case pinball.ClipExplosion:
		return beep.Mix(
			withVolume(newSweep(WaveNoise, 0, 0, 450*time.Millisecond, 7, rate), 0.6),
			withVolume(newSweep(WaveSine, 90, 40, 450*time.Millisecond, 5, rate), 0.5),
		)
	case pinball.ClipBounce:
		return newSweep(WaveSine, 700, 520, 90*time.Millisecond, 25, rate)
	case pinball.ClipDrain:
		return withVolume(newSweep(WaveSaw, 420, 110, 650*time.Millisecond, 2, rate), 0.5)
	case pinball.ClipWarp:
		return newSweep(WaveSine, 220, 1300, 350*time.Millisecond, 3, rate)
	case pinball.ClipFlipper:
		return withVolume(newSweep(WaveSquare, 150, 90, 50*time.Millisecond, 30, rate), 0.4)
	case pinball.ClipCoin:
		return beep.Seq(
			tone(987.77, 70*time.Millisecond, rate),
			tone(1318.51, 180*time.Millisecond, rate),
		)
	default:
		return beep.Silence(0)
	}
}
