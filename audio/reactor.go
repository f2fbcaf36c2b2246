package audio

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// State is what the reactor needs from one simulated frame
type State struct {
	Phase     engine.Phase
	Moving    bool
	Sprinting bool
	Flying    bool
	Stamina   float64
}

// Reactor recomputes continuous cue state every frame and issues the
// explicit one-shot cues for discrete events
type Reactor struct {
	player Player
	rng    *rand.Rand
	tuning *parameter.Tuning

	whisperTimer time.Duration
	ambient      bool
}

// NewReactor configures loops and levels on player
// rng drives the whisper cadence; pass a seeded source for repeatable runs
func NewReactor(player Player, rng *rand.Rand, tuning *parameter.Tuning) *Reactor {
	if tuning == nil {
		tuning = parameter.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Reactor{player: player, rng: rng, tuning: tuning}

	for _, c := range Cues {
		player.SetVolume(c, c.DefaultVolume())
	}
	player.SetLoop(CueFootsteps, true)
	player.SetLoop(CueHeartbeat, true)
	player.SetLoop(CueWind, true)
	return r
}

// React evaluates footsteps, heartbeat and whisper for an active-phase frame
func (r *Reactor) React(s State, dt time.Duration) {
	if s.Moving && !s.Flying {
		pitch := parameter.FootstepWalkPitch
		if s.Sprinting {
			pitch = parameter.FootstepSprintPitch
		}
		r.player.SetPitch(CueFootsteps, pitch)
		if !r.player.IsPlaying(CueFootsteps) {
			r.player.Play(CueFootsteps)
		}
	} else {
		r.stopFootsteps()
	}

	if s.Stamina < r.tuning.HeartbeatStaminaThreshold && s.Phase != engine.PhaseDawn {
		if !r.player.IsPlaying(CueHeartbeat) {
			r.player.Play(CueHeartbeat)
		}
	} else if r.player.IsPlaying(CueHeartbeat) {
		r.player.Pause(CueHeartbeat)
	}

	if s.Phase == engine.PhaseGameplay {
		r.whisperTimer += dt
		if r.whisperTimer > r.tuning.WhisperInterval {
			if r.rng.Float64() < r.tuning.WhisperChance {
				r.player.Rewind(CueWhisper)
				r.player.Play(CueWhisper)
				r.whisperTimer = 0
			} else {
				r.whisperTimer = r.tuning.WhisperRetry
			}
		}
	}
}

// Reset starts a new run: the whisper accumulator restarts and the loops stop
// The ambient bed keeps playing across runs
func (r *Reactor) Reset() {
	r.whisperTimer = 0
	r.Silence()
}

// Silence pauses the continuous loops outside active phases
func (r *Reactor) Silence() {
	r.stopFootsteps()
	if r.player.IsPlaying(CueHeartbeat) {
		r.player.Pause(CueHeartbeat)
	}
}

func (r *Reactor) stopFootsteps() {
	if r.player.IsPlaying(CueFootsteps) {
		r.player.Pause(CueFootsteps)
		r.player.Rewind(CueFootsteps)
	}
}

// Door plays the door cue from the start
func (r *Reactor) Door() {
	r.player.Rewind(CueDoor)
	r.player.Play(CueDoor)
}

// Kick plays the impact cue from the start
func (r *Reactor) Kick() {
	r.player.Rewind(CueKick)
	r.player.Play(CueKick)
}

// StartChase loops the scream slowed down as the pursuit cue
func (r *Reactor) StartChase() {
	r.player.SetPitch(CueScream, parameter.ChasePitch)
	r.player.SetLoop(CueScream, true)
	r.player.SetVolume(CueScream, parameter.ScreamVolume)
	r.player.Rewind(CueScream)
	r.player.Play(CueScream)
}

// StopChase stops the pursuit cue and resets its playback position
func (r *Reactor) StopChase() {
	r.player.Pause(CueScream)
	r.player.Rewind(CueScream)
	r.player.SetLoop(CueScream, false)
	r.player.SetPitch(CueScream, 1)
}

// Scare plays the scream once at full speed
func (r *Reactor) Scare() {
	r.player.SetLoop(CueScream, false)
	r.player.SetPitch(CueScream, 1)
	r.player.Rewind(CueScream)
	r.player.Play(CueScream)
}

// StartAmbient starts the wind bed once; later calls are no-ops
func (r *Reactor) StartAmbient() {
	if r.ambient {
		return
	}
	r.ambient = true
	r.player.Play(CueWind)
}

// WhisperTimer exposes the whisper accumulator for diagnostics
func (r *Reactor) WhisperTimer() time.Duration {
	return r.whisperTimer
}
