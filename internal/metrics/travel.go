package metrics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/viewer"
)

// CameraTravel is the path length the camera has covered.
type CameraTravel struct {
	name  string
	last  mgl64.Vec3
	total float64
	seen  bool
}

func NewCameraTravel() *CameraTravel { return &CameraTravel{name: "camera_travel"} }

func (c *CameraTravel) Name() string { return c.name }

func (c *CameraTravel) OnTick(tick uint64, v *viewer.Viewer) {
	pos := v.Camera.Position
	if c.seen {
		c.total += pos.Sub(c.last).Len()
	}
	c.last, c.seen = pos, true
}

func (c *CameraTravel) Value() float64 { return c.total }

func (c *CameraTravel) Reset() {
	c.total = 0
	c.seen = false
}
