// Package orbit moves a perspective camera around a target point from
// pointer or keyboard input.
//
// Input methods only accumulate deltas. They are applied, in one step, by
// Update, which the frame loop calls before rendering.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

const epsilon = 1e-6

type spherical struct {
	radius, theta, phi float64
}

// Controls orbits Camera around Target.
type Controls struct {
	Camera *scene.PerspectiveCamera
	Target mgl64.Vec3

	EnableDamping bool
	DampingFactor float64

	MinDistance, MaxDistance float64
	MinPolarAngle            float64
	MaxPolarAngle            float64

	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	delta     spherical
	scale     float64
	panOffset mgl64.Vec3
}

func New(cam *scene.PerspectiveCamera) *Controls {
	return &Controls{
		Camera:        cam,
		Target:        cam.Target,
		DampingFactor: 0.05,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		scale:         1,
	}
}

// RotateLeft orbits around the vertical axis.
func (c *Controls) RotateLeft(angle float64) { c.delta.theta -= angle }

// RotateUp tilts towards the poles.
func (c *Controls) RotateUp(angle float64) { c.delta.phi -= angle }

// Drag converts a pointer movement in pixels into an orbit, where a drag of
// the full viewport height is one turn.
func (c *Controls) Drag(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float64(viewportHeight)
	c.RotateLeft(2 * math.Pi * dx / h * c.RotateSpeed)
	c.RotateUp(2 * math.Pi * dy / h * c.RotateSpeed)
}

// Dolly moves towards the target for positive steps and away for negative.
func (c *Controls) Dolly(steps float64) {
	c.scale *= math.Pow(c.zoomScale(), steps)
}

func (c *Controls) zoomScale() float64 { return math.Pow(0.95, c.ZoomSpeed) }

// Pan shifts camera and target in screen space by a pointer movement in pixels.
func (c *Controls) Pan(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	offset := c.Camera.Position.Sub(c.Target)
	dist := offset.Len() * math.Tan(mgl64.DegToRad(c.Camera.FOV)/2)
	h := float64(viewportHeight)

	_, right, up := c.Camera.Basis()
	c.panOffset = c.panOffset.
		Add(right.Mul(-2 * dx * dist / h * c.PanSpeed)).
		Add(up.Mul(2 * dy * dist / h * c.PanSpeed))
}

func (c *Controls) idle() bool {
	return c.delta == (spherical{}) && c.scale == 1 && c.panOffset == (mgl64.Vec3{})
}

// Update applies pending input to the camera. It reports whether the camera
// moved. Without pending input the camera is left untouched.
func (c *Controls) Update() bool {
	if c.idle() {
		return false
	}

	offset := c.Camera.Position.Sub(c.Target)
	s := toSpherical(offset)

	k := 1.0
	if c.EnableDamping {
		k = c.DampingFactor
	}
	s.theta += c.delta.theta * k
	s.phi += c.delta.phi * k
	s.phi = mgl64.Clamp(s.phi, c.MinPolarAngle, c.MaxPolarAngle)
	s.phi = mgl64.Clamp(s.phi, epsilon, math.Pi-epsilon)

	s.radius = mgl64.Clamp(s.radius*c.scale, c.MinDistance, c.MaxDistance)

	c.Target = c.Target.Add(c.panOffset.Mul(k))

	prev := c.Camera.Position
	c.Camera.Position = c.Target.Add(fromSpherical(s))
	c.Camera.LookAt(c.Target)

	if c.EnableDamping {
		c.delta.theta *= 1 - c.DampingFactor
		c.delta.phi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
		c.settle()
	} else {
		c.delta = spherical{}
		c.panOffset = mgl64.Vec3{}
	}
	c.scale = 1

	return prev.Sub(c.Camera.Position).LenSqr() > epsilon
}

// settle zeroes damped deltas once they stop being visible.
func (c *Controls) settle() {
	const tiny = 1e-9
	if math.Abs(c.delta.theta) < tiny {
		c.delta.theta = 0
	}
	if math.Abs(c.delta.phi) < tiny {
		c.delta.phi = 0
	}
	if c.panOffset.LenSqr() < tiny*tiny {
		c.panOffset = mgl64.Vec3{}
	}
}

// Reset drops pending input.
func (c *Controls) Reset() {
	c.delta = spherical{}
	c.scale = 1
	c.panOffset = mgl64.Vec3{}
}

func toSpherical(v mgl64.Vec3) spherical {
	r := v.Len()
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math.Atan2(v[0], v[2]),
		phi:    math.Acos(mgl64.Clamp(v[1]/r, -1, 1)),
	}
}

func fromSpherical(s spherical) mgl64.Vec3 {
	sinPhi := math.Sin(s.phi)
	return mgl64.Vec3{
		s.radius * sinPhi * math.Sin(s.theta),
		s.radius * math.Cos(s.phi),
		s.radius * sinPhi * math.Cos(s.theta),
	}
}
