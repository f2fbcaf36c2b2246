package physics

import "github.com/go-gl/mathgl/mgl64"

// Smoothstep eases t in [0,1] as t²(3-2t); inputs outside the range are clamped
func Smoothstep(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// LerpVec interpolates linearly between a and b
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
