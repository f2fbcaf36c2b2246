package audio

import (
	"fmt"
	"sync"
)

// Command is one call recorded by Recorder
type Command struct {
	Op    string
	Cue   Cue
	Value float64
}

func (c Command) String() string {
	switch c.Op {
	case "pitch", "volume", "loop":
		return fmt.Sprintf("%s(%s,%g)", c.Op, c.Cue, c.Value)
	}
	return fmt.Sprintf("%s(%s)", c.Op, c.Cue)
}

// cueState mirrors what a real backend would hold for one cue
type cueState struct {
	playing bool
	loop    bool
	pitch   float64
	volume  float64
	rewinds int
}

// Recorder is a Player that keeps every command and the resulting cue state
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	cues     [cueCount]cueState
}

// NewRecorder creates a recorder with every cue paused at pitch 1
func NewRecorder() *Recorder {
	r := &Recorder{}
	for i := range r.cues {
		r.cues[i].pitch = 1
		r.cues[i].volume = Cue(i).DefaultVolume()
	}
	return r
}

func (r *Recorder) record(op string, c Cue, v float64, apply func(*cueState)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, Command{Op: op, Cue: c, Value: v})
	if c < cueCount {
		apply(&r.cues[c])
	}
}

func (r *Recorder) Play(c Cue) {
	r.record("play", c, 0, func(s *cueState) { s.playing = true })
}

func (r *Recorder) Pause(c Cue) {
	r.record("pause", c, 0, func(s *cueState) { s.playing = false })
}

func (r *Recorder) Rewind(c Cue) {
	r.record("rewind", c, 0, func(s *cueState) { s.rewinds++ })
}

func (r *Recorder) SetPitch(c Cue, ratio float64) {
	r.record("pitch", c, ratio, func(s *cueState) { s.pitch = ratio })
}

func (r *Recorder) SetLoop(c Cue, loop bool) {
	v := 0.0
	if loop {
		v = 1
	}
	r.record("loop", c, v, func(s *cueState) { s.loop = loop })
}

func (r *Recorder) SetVolume(c Cue, volume float64) {
	r.record("volume", c, volume, func(s *cueState) { s.volume = volume })
}

func (r *Recorder) IsPlaying(c Cue) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return c < cueCount && r.cues[c].playing
}

// Commands returns a copy of the recorded calls
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Count returns how many times op was issued for c
func (r *Recorder) Count(op string, c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, cmd := range r.commands {
		if cmd.Op == op && cmd.Cue == c {
			n++
		}
	}
	return n
}

// Pitch returns the last pitch set for c
func (r *Recorder) Pitch(c Cue) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cues[c].pitch
}

// Looping reports the loop flag of c
func (r *Recorder) Looping(c Cue) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cues[c].loop
}

// Volume returns the last volume set for c
func (r *Recorder) Volume(c Cue) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cues[c].volume
}

// Rewinds returns how many times c was rewound
func (r *Recorder) Rewinds(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cues[c].rewinds
}

// Reset forgets recorded commands but keeps cue state
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = nil
}

var _ Player = (*Recorder)(nil)
