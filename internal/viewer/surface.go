package viewer

import "github.com/san-kum/molview/internal/scene"

// Surface is an output the viewer renders into.
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	Render(s *scene.Scene, cam *scene.PerspectiveCamera)
}

// ShadowSurface is a Surface that can draw shadows.
type ShadowSurface interface {
	Surface
	SetShadows(enabled bool)
}

// Headless is a Surface that draws nothing and counts frames.
type Headless struct {
	width, height int
	shadows       bool
	Frames        uint64
	Resizes       uint64
}

func (h *Headless) SetSize(width, height int) {
	h.width, h.height = width, height
	h.Resizes++
}

func (h *Headless) Size() (int, int)   { return h.width, h.height }
func (h *Headless) SetShadows(on bool) { h.shadows = on }
func (h *Headless) Shadows() bool      { return h.shadows }

func (h *Headless) Render(*scene.Scene, *scene.PerspectiveCamera) {
	h.Frames++
}
