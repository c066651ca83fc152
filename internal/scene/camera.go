package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PerspectiveCamera projects with a vertical field of view in degrees.
type PerspectiveCamera struct {
	FOV    float64
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	projection mgl64.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     AxisY,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after FOV, Aspect, Near or Far change.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl64.Mat4 { return c.projection }

func (c *PerspectiveCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *PerspectiveCamera) LookAt(target mgl64.Vec3) { c.Target = target }

// Basis returns the camera's forward, right and up unit vectors.
func (c *PerspectiveCamera) Basis() (forward, right, up mgl64.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Ray returns the unit direction through normalised device coordinates
// (ndcX, ndcY), both in [-1, 1] with +Y up.
func (c *PerspectiveCamera) Ray(ndcX, ndcY float64) mgl64.Vec3 {
	forward, right, up := c.Basis()
	halfH := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	halfW := c.Aspect * halfH
	return forward.Add(right.Mul(ndcX * halfW)).Add(up.Mul(ndcY * halfH)).Normalize()
}

// Project maps a world point to pixel coordinates on a w x h surface. depth
// is the view-space distance along the forward axis. ok is false for points
// behind the near plane.
func (c *PerspectiveCamera) Project(p mgl64.Vec3, w, h int) (x, y, depth float64, ok bool) {
	clip := c.projection.Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	depth = clip[3]
	if depth < c.Near {
		return 0, 0, depth, false
	}
	nx, ny := clip[0]/depth, clip[1]/depth
	x = (nx + 1) / 2 * float64(w)
	y = (1 - ny) / 2 * float64(h)
	return x, y, depth, true
}

// PixelScale is the on-screen size in pixels of one world unit at depth on a
// surface of height h.
func (c *PerspectiveCamera) PixelScale(depth float64, h int) float64 {
	if depth <= 0 {
		return 0
	}
	return float64(h) / (2 * math.Tan(mgl64.DegToRad(c.FOV)/2) * depth)
}
