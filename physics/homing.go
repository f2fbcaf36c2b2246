package physics

import "github.com/go-gl/mathgl/mgl64"

// MoveToward steps from toward target by at most maxStep
// Returns the new position and whether it reached the target
func MoveToward(from, target mgl64.Vec3, maxStep float64) (mgl64.Vec3, bool) {
	delta := target.Sub(from)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return target, true
	}
	if maxStep <= 0 {
		return from, false
	}
	return from.Add(delta.Mul(maxStep / dist)), false
}
