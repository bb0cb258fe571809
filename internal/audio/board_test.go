package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

func testAudioConfig() config.AudioConfig {
	cfg := config.DefaultPinballConfig().Audio
	cfg.SampleRate = 8000
	return cfg
}

// drain pulls seconds of audio through the board's mixer.
func drain(b *Board, seconds float64) {
	buf := make([][2]float64, 256)
	total := int(seconds * float64(b.rate))
	for n := 0; n < total; n += len(buf) {
		b.mixer.Stream(buf)
	}
}

func TestSynthesizeClipsAreFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, c := range pinball.Clips() {
		t.Run(c.String(), func(t *testing.T) {
			s := Synthesize(c, rate)
			buf := make([][2]float64, 512)
			samples := 0
			for {
				n, ok := s.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] < -2 || buf[i][0] > 2 {
						t.Fatalf("sample %d out of range: %v", samples+i, buf[i][0])
					}
				}
				samples += n
				if !ok {
					break
				}
				if samples > int(rate) {
					t.Fatal("clip longer than one second")
				}
			}
			if samples == 0 {
				t.Error("clip produced no samples")
			}
		})
	}
}

func TestBoardPlayUntilFinished(t *testing.T) {
	b := New(testAudioConfig())

	b.Play(pinball.ClipBounce)
	if !b.IsPlaying(pinball.ClipBounce) {
		t.Fatal("bounce should be playing")
	}
	if b.IsPlaying(pinball.ClipCoin) {
		t.Error("coin should not be playing")
	}

	drain(b, 1)
	if b.IsPlaying(pinball.ClipBounce) {
		t.Error("bounce should have finished")
	}
}

func TestBoardOverlayAndStop(t *testing.T) {
	b := New(testAudioConfig())

	b.Play(pinball.ClipCoin)
	b.Play(pinball.ClipCoin)
	if got := b.live[pinball.ClipCoin].Load(); got != 2 {
		t.Fatalf("live coin voices = %d, want 2", got)
	}

	b.Stop(pinball.ClipCoin)
	if b.IsPlaying(pinball.ClipCoin) {
		t.Error("coin should be stopped")
	}

	// Streaming after a stop must not drive the counter negative.
	drain(b, 1)
	if got := b.live[pinball.ClipCoin].Load(); got != 0 {
		t.Errorf("live coin voices = %d, want 0", got)
	}
}

func TestBoardDisabled(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	b, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open(disabled) error = %v", err)
	}
	defer b.Close()

	if b.enabled {
		t.Error("board should be disabled")
	}
	b.Play(pinball.ClipWarp)
	if b.IsPlaying(pinball.ClipWarp) {
		t.Error("disabled board should never play")
	}
}

func TestBoardGains(t *testing.T) {
	cfg := testAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.Volumes = map[string]float64{"drain": 0.5}
	b := New(cfg)

	if got := b.gains[pinball.ClipDrain]; got != 0.25 {
		t.Errorf("drain gain = %v, want 0.25", got)
	}
	if got := b.gains[pinball.ClipWarp]; got != 0.5 {
		t.Errorf("warp gain = %v, want master volume", got)
	}
}

func TestBoardWithSoundBoardPolicies(t *testing.T) {
	b := New(testAudioConfig())
	sb := pinball.NewSoundBoard(b, pinball.DefaultCues())

	if !sb.Trigger(pinball.ClipExplosion) {
		t.Fatal("explosion should start")
	}
	if sb.Trigger(pinball.ClipBounce) {
		t.Error("bounce should be blocked by the explosion")
	}
	if sb.Trigger(pinball.ClipExplosion) {
		t.Error("explosion should not restart while playing")
	}

	drain(b, 1)
	if !sb.Trigger(pinball.ClipBounce) {
		t.Error("bounce should play once the explosion ended")
	}
}
