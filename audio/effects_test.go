package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// TestOscillatorWaves verifies every wave stays within [-1, 1]
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	rng := rand.New(rand.NewSource(1))

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate, rng)
		samples := drain(osc)
		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), rate.N(50*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestNoiseIsSeeded verifies equal seeds render identical noise
func TestNoiseIsSeeded(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := drain(NewOscillator(0, 10*time.Millisecond, WaveNoise, rate, rand.New(rand.NewSource(3))))
	b := drain(NewOscillator(0, 10*time.Millisecond, WaveNoise, rate, rand.New(rand.NewSource(3))))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestSweepChangesPitch(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(NewSweep(100, 400, time.Second, WaveSaw, rate, nil))

	// Count saw resets in the first and last tenth
	wraps := func(part [][2]float64) int {
		n := 0
		for i := 1; i < len(part); i++ {
			if part[i][0] < part[i-1][0] {
				n++
			}
		}
		return n
	}
	tenth := len(samples) / 10
	early, late := wraps(samples[:tenth]), wraps(samples[len(samples)-tenth:])
	if late <= early*2 {
		t.Errorf("sweep did not rise: early=%d late=%d", early, late)
	}
}

// TestEnvelopeShape verifies silence at the edges and full level in the middle
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := time.Second
	osc := NewOscillator(0, d, WaveSquare, rate, nil) // constant +1
	env := NewEnvelope(osc, d, 100*time.Millisecond, 100*time.Millisecond, rate)
	samples := drain(env)

	if samples[0][0] != 0 {
		t.Errorf("attack should start at 0, got %v", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain level %v, want 1", samples[500][0])
	}
	if last := samples[len(samples)-1][0]; last > 0.02 {
		t.Errorf("release should end near 0, got %v", last)
	}
}

func TestDecayFalls(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(NewDecay(NewOscillator(0, time.Second, WaveSquare, rate, nil), 5, rate))
	if math.Abs(samples[999][0]-math.Exp(-5*0.999)) > 1e-6 {
		t.Errorf("decay at 1s = %v", samples[999][0])
	}
}

func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	v := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate, nil), 0)
	if !v.Silent {
		t.Fatal("zero volume must be silent, log2(0) is -Inf")
	}
	for _, s := range drain(v) {
		if s[0] != 0 {
			t.Fatalf("silent volume produced %v", s[0])
		}
	}

	setVolume(v, 0.5)
	if v.Silent || v.Volume != -1 {
		t.Errorf("setVolume(0.5) = silent %v volume %v", v.Silent, v.Volume)
	}
}
