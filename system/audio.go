package system

import (
	"github.com/lixenwraith/midnight-awake/audio"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// AudioSystem feeds the frame's movement and vitals to the audio reactor
type AudioSystem struct {
	ctx *Context
}

// NewAudioSystem creates the audio reaction system
func NewAudioSystem(ctx *Context) System {
	return &AudioSystem{ctx: ctx}
}

func (s *AudioSystem) Init() {
	s.ctx.Audio.Reset()
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update(f *Frame) {
	if !f.Phase.IsActive() {
		s.ctx.Audio.Silence()
		return
	}
	s.ctx.Audio.React(audio.State{
		Phase:     f.Phase,
		Moving:    f.Moving,
		Sprinting: f.Sprinting,
		Flying:    f.Fly,
		Stamina:   s.ctx.State.Stamina(),
	}, f.DT)
}
