package physics

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/parameter"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func TestPoseAxes(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float64
		forward mgl64.Vec3
		right   mgl64.Vec3
	}{
		{"yaw 0 faces -Z", 0, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}},
		{"yaw +90 faces -X", math.Pi / 2, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{"yaw 180 faces +Z", math.Pi, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pose{Yaw: tt.yaw}
			if !vecNear(p.Forward(), tt.forward) {
				t.Errorf("forward = %v, want %v", p.Forward(), tt.forward)
			}
			if !vecNear(p.Right(), tt.right) {
				t.Errorf("right = %v, want %v", p.Right(), tt.right)
			}
		})
	}

	p := Pose{Pitch: math.Pi / 4}
	if f := p.Forward(); f[1] <= 0 {
		t.Errorf("positive pitch should look up, forward %v", f)
	}
}

// TestWalkIgnoresPitch verifies walking stays horizontal and normalizes diagonals
func TestWalkIgnoresPitch(t *testing.T) {
	p := Pose{Position: mgl64.Vec3{0, parameter.EyeHeight, 0}, Pitch: 1.2}

	p.Walk(mgl64.Vec3{0, 0, -1}, 2)
	if !vecNear(p.Position, mgl64.Vec3{0, parameter.EyeHeight, -2}) {
		t.Errorf("forward walk ended at %v", p.Position)
	}

	p.Position = mgl64.Vec3{}
	p.Walk(mgl64.Vec3{1, 0, -1}, 1)
	if d := math.Hypot(p.Position[0], p.Position[2]); math.Abs(d-1) > eps {
		t.Errorf("diagonal walk covered %v, want 1", d)
	}

	p.Position = mgl64.Vec3{}
	p.Walk(mgl64.Vec3{}, 5)
	if p.Position != (mgl64.Vec3{}) {
		t.Errorf("zero direction moved the player to %v", p.Position)
	}
	for _, c := range p.Position {
		if math.IsNaN(c) {
			t.Fatal("zero direction produced NaN")
		}
	}
}

func TestWalkFollowsHeading(t *testing.T) {
	p := Pose{Yaw: math.Pi / 2}
	p.Walk(mgl64.Vec3{0, 0, -1}, 3)
	if !vecNear(p.Position, mgl64.Vec3{-3, 0, 0}) {
		t.Errorf("walked to %v, want (-3,0,0)", p.Position)
	}
}

func TestTranslateLocalFollowsPitch(t *testing.T) {
	p := Pose{Pitch: math.Pi / 4}
	p.TranslateLocal(mgl64.Vec3{0, 0, -1})
	if p.Position[1] <= 0 || p.Position[2] >= 0 {
		t.Errorf("fly forward while looking up should climb, got %v", p.Position)
	}
	if math.Abs(p.Position.Len()-1) > eps {
		t.Errorf("moved %v, want 1", p.Position.Len())
	}
}

func TestLookAt(t *testing.T) {
	var p Pose
	p.Reset(parameter.DefaultTuning().StandPosition, parameter.DefaultTuning().StandLookTarget)

	want := parameter.DefaultTuning().StandLookTarget.Sub(p.Position).Normalize()
	if !p.Forward().ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("forward %v, want %v", p.Forward(), want)
	}

	// Looking straight up is clamped short of the pole
	p.Position = mgl64.Vec3{}
	p.LookAt(mgl64.Vec3{0, 10, 0})
	if p.Pitch != parameter.PitchLimit {
		t.Errorf("pitch = %v, want clamp %v", p.Pitch, parameter.PitchLimit)
	}
}

func TestApplyLook(t *testing.T) {
	var p Pose
	p.ApplyLook(100, 0, 0.002)
	if p.Yaw >= 0 {
		t.Errorf("moving right should decrease yaw, got %v", p.Yaw)
	}
	p.ApplyLook(0, 1e6, 0.002)
	if p.Pitch != -parameter.PitchLimit {
		t.Errorf("pitch = %v, want clamp", p.Pitch)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1}, {0.25, 0.15625},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpVec(t *testing.T) {
	a, b := mgl64.Vec3{0, 0.8, 2}, mgl64.Vec3{0, 1.7, 0}
	if !vecNear(LerpVec(a, b, 0), a) || !vecNear(LerpVec(a, b, 1), b) {
		t.Error("endpoints not preserved")
	}
	if got := LerpVec(a, b, 0.5); !vecNear(got, mgl64.Vec3{0, 1.25, 1}) {
		t.Errorf("midpoint %v", got)
	}
}

func TestShake(t *testing.T) {
	var s Shake
	if s.Update(time.Millisecond) != (mgl64.Vec3{}) {
		t.Error("idle shake produced an offset")
	}

	s.Start(parameter.ShakeDip, parameter.ShakeDuration)
	if off := s.Update(16 * time.Millisecond); off[1] != -parameter.ShakeDip {
		t.Errorf("offset = %v, want dip", off)
	}
	for i := 0; i < 10; i++ {
		s.Update(16 * time.Millisecond)
	}
	if s.Active() || s.Update(16*time.Millisecond) != (mgl64.Vec3{}) {
		t.Error("shake did not recover")
	}
}

func TestMoveToward(t *testing.T) {
	pos, arrived := MoveToward(mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 0}, 4)
	if arrived || !vecNear(pos, mgl64.Vec3{0, 0, -6}) {
		t.Errorf("step = %v arrived=%v", pos, arrived)
	}
	pos, arrived = MoveToward(pos, mgl64.Vec3{}, 100)
	if !arrived || pos != (mgl64.Vec3{}) {
		t.Errorf("overshoot = %v arrived=%v", pos, arrived)
	}
}
