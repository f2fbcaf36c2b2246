package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Synthesize renders a cue procedurally into a seekable buffer
func Synthesize(c Cue, rate beep.SampleRate, rng *rand.Rand) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if s := cueStreamer(c, rate, rng); s != nil {
		buf.Append(s)
	}
	return buf
}

func cueStreamer(c Cue, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch c {
	case CueFootsteps:
		return footsteps(rate, rng)
	case CueDoor:
		return doorCreak(rate, rng)
	case CueHeartbeat:
		return heartbeat(rate)
	case CueWhisper:
		return whisper(rate, rng)
	case CueScream:
		return scream(rate, rng)
	case CueKick:
		return kick(rate, rng)
	case CueWind:
		return wind(rate, rng)
	}
	return nil
}

// footsteps is one stride: two muffled crunches on leaf litter
func footsteps(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	step := func() beep.Streamer {
		d := 90 * time.Millisecond
		crunch := NewLowpass(NewOscillator(0, d, WaveNoise, rate, rng), 0.25)
		thump := NewOscillator(60, d, WaveSine, rate, rng)
		return beep.Take(rate.N(d), NewDecay(beep.Mix(newVolume(crunch, 0.7), newVolume(thump, 0.5)), 30, rate))
	}
	gap := rate.N(410 * time.Millisecond)
	return beep.Seq(step(), beep.Silence(gap), step(), beep.Silence(gap))
}

// doorCreak is a falling saw groan over hinge noise
func doorCreak(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 800 * time.Millisecond
	groan := NewLowpass(NewSweep(320, 170, d, WaveSaw, rate, rng), 0.3)
	hinge := NewLowpass(NewOscillator(0, d, WaveNoise, rate, rng), 0.1)
	mixed := beep.Mix(newVolume(groan, 0.6), newVolume(hinge, 0.3))
	return NewEnvelope(mixed, d, 40*time.Millisecond, 250*time.Millisecond, rate)
}

// heartbeat is one lub-dub cycle
func heartbeat(rate beep.SampleRate) beep.Streamer {
	lub := NewDecay(NewOscillator(55, 140*time.Millisecond, WaveSine, rate, nil), 18, rate)
	dub := NewDecay(NewOscillator(45, 120*time.Millisecond, WaveSine, rate, nil), 22, rate)
	return beep.Seq(
		lub,
		beep.Silence(rate.N(110*time.Millisecond)),
		dub,
		beep.Silence(rate.N(630*time.Millisecond)),
	)
}

// whisper is breathy filtered noise with a syllable-rate flutter
func whisper(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 2200 * time.Millisecond
	breath := NewLowpass(NewOscillator(0, d, WaveNoise, rate, rng), 0.35)
	return NewEnvelope(NewTremolo(breath, 6, 0.8, rate), d, 400*time.Millisecond, 700*time.Millisecond, rate)
}

// scream is a rising shriek over noise
func scream(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 1500 * time.Millisecond
	voice := NewSweep(900, 1400, d, WaveSaw, rate, rng)
	rasp := NewOscillator(0, d, WaveNoise, rate, rng)
	mixed := beep.Mix(newVolume(voice, 0.5), newVolume(rasp, 0.35))
	return NewEnvelope(NewTremolo(mixed, 11, 0.3, rate), d, 30*time.Millisecond, 400*time.Millisecond, rate)
}

// kick is a heavy boot on wood: noise crack plus a low knock
func kick(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 260 * time.Millisecond
	crack := NewDecay(NewOscillator(0, d, WaveNoise, rate, rng), 40, rate)
	knock := NewDecay(NewSweep(110, 55, d, WaveSine, rate, rng), 12, rate)
	return beep.Take(rate.N(d), beep.Mix(newVolume(crack, 0.6), newVolume(knock, 0.9)))
}

// wind is a long dark noise bed with a slow swell
func wind(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 8 * time.Second
	bed := NewLowpass(NewOscillator(0, d, WaveNoise, rate, rng), 0.02)
	return NewTremolo(newVolume(bed, 4), 0.125, 0.6, rate)
}
