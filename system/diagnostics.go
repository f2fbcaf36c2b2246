package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/status"
)

// DiagnosticsSystem publishes per-frame figures to the status registry for the debug overlay
type DiagnosticsSystem struct {
	ctx *Context

	frames  *atomic.Int64
	dtMs    *status.Gauge
	dtPeak  *status.Gauge
	phase   *status.Label
	pending *atomic.Bool
	x, z    *status.Gauge
	pursuer *status.Gauge
	whisper *status.Gauge
	scene   *status.Gauge
	fields  map[engine.Field]*status.Label
}

// storeFields are mirrored into the overlay through the string-keyed store
var storeFields = []engine.Field{
	engine.FieldLockedDoorHealth,
	engine.FieldDawnProgress,
	engine.FieldMouseSensitivity,
}

// NewDiagnosticsSystem caches metric pointers from reg
func NewDiagnosticsSystem(ctx *Context, reg *status.Registry) System {
	fields := make(map[engine.Field]*status.Label, len(storeFields))
	for _, f := range storeFields {
		fields[f] = reg.Labels.Get("state." + string(f))
	}
	return &DiagnosticsSystem{
		ctx:     ctx,
		frames:  reg.Counters.Get("frame.count"),
		dtMs:    reg.Gauges.Get("frame.dt_ms"),
		dtPeak:  reg.Gauges.Get("frame.dt_peak_ms"),
		phase:   reg.Labels.Get("phase"),
		pending: reg.Flags.Get("chase.pending"),
		x:       reg.Gauges.Get("player.x"),
		z:       reg.Gauges.Get("player.z"),
		pursuer: reg.Gauges.Get("pursuer.distance"),
		whisper: reg.Gauges.Get("audio.whisper_s"),
		scene:   reg.Gauges.Get("cutscene.remaining_s"),
		fields:  fields,
	}
}

func (s *DiagnosticsSystem) Init() {}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update(f *Frame) {
	s.frames.Add(1)
	ms := float64(f.DT.Microseconds()) / 1000
	s.dtMs.Set(ms)
	s.dtPeak.Peak(ms)
	s.phase.Store(s.ctx.State.Phase().String())
	s.pending.Store(s.ctx.Phases.ChasePending())

	p := s.ctx.Pose.Position
	s.x.Set(p[0])
	s.z.Set(p[2])
	s.pursuer.Set(s.ctx.Pursuer.Sub(p).Len())
	s.whisper.Set(s.ctx.Audio.WhisperTimer().Seconds())
	s.scene.Set(s.ctx.Phases.CutsceneRemaining().Seconds())

	for f, l := range s.fields {
		if v, err := s.ctx.State.Get(f); err == nil {
			l.Store(fmt.Sprint(v))
		}
	}
}
