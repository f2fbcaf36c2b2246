package audio

import (
	"github.com/sirupsen/logrus"
)

// Muter is implemented by players that support a runtime mute toggle
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Open starts the beep backend, falling back to a silent player when no
// output device is available; the game never fails to start over audio
// The returned close func is always safe to call
func Open(opts Options, log logrus.FieldLogger) (Player, func()) {
	p, err := NewBeepPlayer(opts)
	if err != nil {
		log.WithError(err).Warn("audio disabled")
		return Silent{}, func() {}
	}
	log.WithFields(logrus.Fields{
		"sample_rate": opts.SampleRate,
		"muted":       opts.Muted,
	}).Info("audio started")
	return p, p.Close
}

// ToggleMute flips mute on players that support it, returning the new state
func ToggleMute(p Player) (muted, ok bool) {
	m, ok := p.(Muter)
	if !ok {
		return false, false
	}
	m.SetMuted(!m.Muted())
	return m.Muted(), true
}
