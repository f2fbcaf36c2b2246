package audio

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// Options configures the beep backend
type Options struct {
	SampleRate   int
	MasterVolume float64 // 0..1
	Muted        bool
	Seed         int64 // noise seed for cue synthesis
}

// DefaultOptions returns full volume at the standard sample rate
func DefaultOptions() Options {
	return Options{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 1,
	}
}

// voice plays a synthesized buffer, looping or stopping at its end
// After a one-shot ends it streams silence so it can stay in the mixer
type voice struct {
	seeker beep.StreamSeeker
	loop   bool
	done   bool
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) && !v.done {
		sn, sok := v.seeker.Stream(samples[filled:])
		filled += sn
		if sok && sn > 0 {
			continue
		}
		if v.loop && v.seeker.Len() > 0 {
			_ = v.seeker.Seek(0)
			continue
		}
		v.done = true
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// track is one cue's chain: voice -> resampler (pitch) -> volume -> ctrl (pause)
type track struct {
	voice     *voice
	resampler *beep.Resampler
	volume    *effects.Volume
	ctrl      *beep.Ctrl
	level     float64
}

// speakerLock serializes commands with the speaker goroutine
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// BeepPlayer drives the cue roster through a beep mixer
type BeepPlayer struct {
	mu     sync.Locker
	mixer  *beep.Mixer
	tracks [cueCount]*track
	master float64
	muted  bool
	live   bool
}

// NewBeepPlayer opens the speaker and starts every cue paused
func NewBeepPlayer(opts Options) (*BeepPlayer, error) {
	if opts.SampleRate <= 0 {
		opts.SampleRate = parameter.AudioSampleRate
	}
	rate := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("init speaker: %w: %w", ErrAudioUnavailable, err)
	}

	p := newBeepPlayer(opts, speakerLock{})
	p.live = true
	speaker.Play(p.mixer)
	return p, nil
}

// newBeepPlayer builds the streamer graph without touching the output device
func newBeepPlayer(opts Options, mu sync.Locker) *BeepPlayer {
	rate := beep.SampleRate(opts.SampleRate)
	rng := rand.New(rand.NewSource(opts.Seed))

	p := &BeepPlayer{
		mu:     mu,
		mixer:  &beep.Mixer{},
		master: clampUnit(opts.MasterVolume),
		muted:  opts.Muted,
	}

	for _, c := range Cues {
		buf := Synthesize(c, rate, rng)
		v := &voice{seeker: buf.Streamer(0, buf.Len()), done: true}
		rs := beep.ResampleRatio(parameter.AudioResampleQuality, 1, v)
		t := &track{
			voice:     v,
			resampler: rs,
			volume:    newVolume(rs, 0),
			level:     c.DefaultVolume(),
		}
		t.ctrl = &beep.Ctrl{Streamer: t.volume, Paused: true}
		p.applyVolume(t)
		p.tracks[c] = t
		p.mixer.Add(t.ctrl)
	}
	return p
}

func (p *BeepPlayer) track(c Cue) *track {
	if c >= cueCount {
		return nil
	}
	return p.tracks[c]
}

func (p *BeepPlayer) applyVolume(t *track) {
	if p.muted {
		setVolume(t.volume, 0)
		return
	}
	setVolume(t.volume, t.level*p.master)
}

// Play resumes a cue; a finished one-shot restarts from the beginning
func (p *BeepPlayer) Play(c Cue) {
	t := p.track(c)
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if t.voice.done {
		_ = t.voice.seeker.Seek(0)
		t.voice.done = false
	}
	t.ctrl.Paused = false
}

// Pause holds a cue at its current position
func (p *BeepPlayer) Pause(c Cue) {
	t := p.track(c)
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	t.ctrl.Paused = true
}

// Rewind moves a cue back to its start without changing play state
func (p *BeepPlayer) Rewind(c Cue) {
	t := p.track(c)
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = t.voice.seeker.Seek(0)
	t.voice.done = false
}

// SetPitch sets the playback rate; non-positive ratios are ignored
func (p *BeepPlayer) SetPitch(c Cue, ratio float64) {
	t := p.track(c)
	if t == nil || ratio <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	t.resampler.SetRatio(ratio)
}

// SetLoop makes a cue repeat from its start when it ends
func (p *BeepPlayer) SetLoop(c Cue, loop bool) {
	t := p.track(c)
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	t.voice.loop = loop
}

// SetVolume sets a cue's level before the master volume is applied
func (p *BeepPlayer) SetVolume(c Cue, volume float64) {
	t := p.track(c)
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	t.level = clampUnit(volume)
	p.applyVolume(t)
}

// IsPlaying reports whether a cue is unpaused and not yet finished
func (p *BeepPlayer) IsPlaying(c Cue) bool {
	t := p.track(c)
	if t == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return !t.ctrl.Paused && !t.voice.done
}

// SetMuted silences every cue without losing their levels
func (p *BeepPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	for _, t := range p.tracks {
		p.applyVolume(t)
	}
}

// Muted reports the mute state
func (p *BeepPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close pauses everything and releases the output device
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	for _, t := range p.tracks {
		t.ctrl.Paused = true
	}
	p.mixer.Clear()
	p.mu.Unlock()

	if p.live {
		speaker.Clear()
		speaker.Close()
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v != v, v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

var _ Player = (*BeepPlayer)(nil)
