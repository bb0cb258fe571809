package pinball

// Policy decides what happens when a cue is triggered.
type Policy int

const (
	// PolicyAlwaysRestart stops the clip and plays it from the start.
	PolicyAlwaysRestart Policy = iota
	// PolicySuppressWhilePlaying ignores the trigger while the clip is playing.
	PolicySuppressWhilePlaying
	// PolicyOncePerEdge plays when a condition becomes true and stays quiet
	// until the condition has been observed false again.
	PolicyOncePerEdge
	// PolicyOverlay plays without stopping the clip first.
	PolicyOverlay
)

func (p Policy) String() string {
	switch p {
	case PolicyAlwaysRestart:
		return "always-restart"
	case PolicySuppressWhilePlaying:
		return "suppress-while-playing"
	case PolicyOncePerEdge:
		return "once-per-edge"
	case PolicyOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// CueSpec configures a single clip.
// The cue stays silent while any clip in BlockedBy is playing.
type CueSpec struct {
	Policy    Policy
	BlockedBy []Clip
}

// DefaultCues returns the cue table used by the game.
func DefaultCues() map[Clip]CueSpec {
	return map[Clip]CueSpec{
		ClipExplosion: {Policy: PolicySuppressWhilePlaying},
		ClipBounce:    {Policy: PolicyOverlay, BlockedBy: []Clip{ClipExplosion}},
		ClipDrain:     {Policy: PolicyOncePerEdge},
		ClipWarp:      {Policy: PolicyAlwaysRestart},
		ClipFlipper:   {Policy: PolicyAlwaysRestart},
		ClipCoin:      {Policy: PolicyOverlay},
	}
}

// SoundBoard arbitrates cue playback on top of an Audio port.
type SoundBoard struct {
	audio   Audio
	cues    map[Clip]CueSpec
	latched map[Clip]bool
}

// NewSoundBoard creates a board. Edge-triggered cues start latched so a
// condition that is already true at boot stays silent.
func NewSoundBoard(a Audio, cues map[Clip]CueSpec) *SoundBoard {
	b := &SoundBoard{
		audio:   a,
		cues:    cues,
		latched: make(map[Clip]bool),
	}
	for clip, spec := range cues {
		if spec.Policy == PolicyOncePerEdge {
			b.latched[clip] = true
		}
	}
	return b
}

// Trigger requests clip c. It reports whether playback was started.
// Edge-triggered cues are treated as a rising edge.
func (b *SoundBoard) Trigger(c Clip) bool {
	spec := b.cues[c]
	for _, blocker := range spec.BlockedBy {
		if b.audio.IsPlaying(blocker) {
			return false
		}
	}

	switch spec.Policy {
	case PolicyAlwaysRestart:
		b.audio.Stop(c)
		b.audio.Play(c)
	case PolicySuppressWhilePlaying:
		if b.audio.IsPlaying(c) {
			return false
		}
		b.audio.Play(c)
	case PolicyOncePerEdge:
		if b.latched[c] {
			return false
		}
		b.latched[c] = true
		b.audio.Play(c)
	default:
		b.audio.Play(c)
	}
	return true
}

// Edge feeds the current value of a condition to an edge-triggered cue.
// It reports whether playback was started.
func (b *SoundBoard) Edge(c Clip, active bool) bool {
	if !active {
		b.latched[c] = false
		return false
	}
	return b.Trigger(c)
}

// Latched reports whether an edge-triggered cue is waiting for its condition to clear.
func (b *SoundBoard) Latched(c Clip) bool {
	return b.latched[c]
}
