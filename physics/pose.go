package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Local camera axes; the camera looks down -Z with +Y up
var (
	axisForward = mgl64.Vec3{0, 0, -1}
	axisRight   = mgl64.Vec3{1, 0, 0}
	axisUp      = mgl64.Vec3{0, 1, 0}
)

// Pose is the player's camera transform
// Yaw 0 faces -Z and positive yaw turns left; positive pitch looks up
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64

	// Offset is a transient displacement (kick shake) added on top of Position
	Offset mgl64.Vec3
}

// Rotation composes yaw about world Y with pitch about the local X axis
func (p *Pose) Rotation() mgl64.Quat {
	yaw := mgl64.QuatRotate(p.Yaw, axisUp)
	pitch := mgl64.QuatRotate(p.Pitch, axisRight)
	return yaw.Mul(pitch)
}

// Forward returns the unit view direction
func (p *Pose) Forward() mgl64.Vec3 {
	return p.Rotation().Rotate(axisForward)
}

// Right returns the unit local right axis
func (p *Pose) Right() mgl64.Vec3 {
	return p.Rotation().Rotate(axisRight)
}

// Up returns the unit local up axis
func (p *Pose) Up() mgl64.Vec3 {
	return p.Rotation().Rotate(axisUp)
}

// Eye returns the rendered camera position including any shake offset
func (p *Pose) Eye() mgl64.Vec3 {
	return p.Position.Add(p.Offset)
}

// TranslateLocal moves along the camera's own axes, pitch included
// local is (right, up, back) in camera space
func (p *Pose) TranslateLocal(local mgl64.Vec3) {
	if local.Len() == 0 {
		return
	}
	p.Position = p.Position.Add(p.Rotation().Rotate(local))
}

// Walk moves horizontally by distance along dir rotated into the current heading
// dir is (strafe, 0, back) in heading space; a zero dir is a no-op
func (p *Pose) Walk(dir mgl64.Vec3, distance float64) {
	dir[1] = 0
	if dir.Len() == 0 || distance == 0 {
		return
	}
	step := mgl64.Rotate3DY(p.Yaw).Mul3x1(dir.Normalize().Mul(distance))
	p.Position[0] += step[0]
	p.Position[2] += step[2]
}

// LookAt orients the pose toward target, leaving position unchanged
func (p *Pose) LookAt(target mgl64.Vec3) {
	d := target.Sub(p.Position)
	if d.Len() == 0 {
		return
	}
	p.Yaw = math.Atan2(-d[0], -d[2])
	p.Pitch = clampPitch(math.Atan2(d[1], math.Hypot(d[0], d[2])))
}

// ApplyLook turns by a pointer delta; positive dx turns right, positive dy looks down
func (p *Pose) ApplyLook(dx, dy, radiansPerUnit float64) {
	p.Yaw -= dx * radiansPerUnit
	p.Pitch = clampPitch(p.Pitch - dy*radiansPerUnit)
	p.Yaw = math.Remainder(p.Yaw, 2*math.Pi)
}

// Reset places the pose at position facing target with no shake
func (p *Pose) Reset(position, target mgl64.Vec3) {
	p.Position = position
	p.Offset = mgl64.Vec3{}
	p.LookAt(target)
}
