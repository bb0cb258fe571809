// Package audio plays the pinball sound effects through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

// voice is one playing instance of a clip.
type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

// Board implements pinball.Audio with synthesized clips mixed into a
// single beep stream.
type Board struct {
	mu      sync.Mutex
	enabled bool
	opened  bool
	rate    beep.SampleRate
	mixer   *beep.Mixer
	gains   map[pinball.Clip]float64
	voices  map[pinball.Clip][]*voice
	live    map[pinball.Clip]*atomic.Int32

	// lock guards the mixer against the speaker goroutine.
	lock, unlock func()
}

var _ pinball.Audio = (*Board)(nil)

// New creates a board that is not attached to any output. The mixer is
// pulled by whoever streams it.
func New(cfg config.AudioConfig) *Board {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	b := &Board{
		enabled: cfg.Enabled,
		rate:    rate,
		mixer:   &beep.Mixer{},
		gains:   make(map[pinball.Clip]float64),
		voices:  make(map[pinball.Clip][]*voice),
		live:    make(map[pinball.Clip]*atomic.Int32),
		lock:    func() {},
		unlock:  func() {},
	}
	for _, c := range pinball.Clips() {
		gain := cfg.MasterVolume
		if v, ok := cfg.Volumes[c.String()]; ok {
			gain *= v
		}
		b.gains[c] = gain
		b.live[c] = new(atomic.Int32)
	}
	return b
}

// Open creates a board and starts the speaker. A disabled config returns
// a silent board without touching the audio device.
func Open(cfg config.AudioConfig) (*Board, error) {
	b := New(cfg)
	if !b.enabled {
		return b, nil
	}
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		b.enabled = false
		return b, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.opened = true
	b.lock, b.unlock = speaker.Lock, speaker.Unlock
	return b, nil
}

// Close stops every clip and releases the speaker.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for c := range b.voices {
		b.stopLocked(c)
	}
	if b.opened {
		speaker.Clear()
		speaker.Close()
		b.opened = false
	}
	b.enabled = false
}

// Play starts a new instance of c on top of any already playing.
func (b *Board) Play(c pinball.Clip) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled {
		return
	}

	live := b.live[c]
	if live == nil {
		return
	}

	v := &voice{}
	finish := func() {
		if v.done.CompareAndSwap(false, true) {
			live.Add(-1)
		}
	}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(
		withVolume(Synthesize(c, b.rate), b.gains[c]),
		beep.Callback(finish),
	)}

	b.voices[c] = append(b.prune(b.voices[c]), v)
	live.Add(1)

	b.lock()
	b.mixer.Add(v.ctrl)
	b.unlock()
}

// Stop silences every instance of c.
func (b *Board) Stop(c pinball.Clip) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked(c)
}

func (b *Board) stopLocked(c pinball.Clip) {
	live := b.live[c]
	if live == nil {
		return
	}
	b.lock()
	for _, v := range b.voices[c] {
		v.ctrl.Streamer = nil
		if v.done.CompareAndSwap(false, true) {
			live.Add(-1)
		}
	}
	b.unlock()
	b.voices[c] = nil
}

// IsPlaying reports whether any instance of c is still sounding.
func (b *Board) IsPlaying(c pinball.Clip) bool {
	live := b.live[c]
	return live != nil && live.Load() > 0
}

func (b *Board) prune(vs []*voice) []*voice {
	out := vs[:0]
	for _, v := range vs {
		if !v.done.Load() {
			out = append(out, v)
		}
	}
	return out
}
