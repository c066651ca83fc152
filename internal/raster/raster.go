// Package raster renders the scene offscreen with a ray caster, for
// snapshots and animated GIFs.
package raster

import (
	"image"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

// Renderer is an offscreen surface. Render fills Frame.
type Renderer struct {
	width, height int
	shadows       bool
	frame         *image.RGBA
}

func New(width, height int) *Renderer {
	r := &Renderer{}
	r.SetSize(width, height)
	return r
}

func (r *Renderer) SetSize(width, height int) {
	if width == r.width && height == r.height && r.frame != nil {
		return
	}
	r.width, r.height = width, height
	r.frame = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (r *Renderer) Size() (int, int)   { return r.width, r.height }
func (r *Renderer) SetShadows(on bool) { r.shadows = on }
func (r *Renderer) Frame() *image.RGBA { return r.frame }
func (r *Renderer) Shadows() bool      { return r.shadows }

// Render traces one ray per pixel. Rows are traced concurrently; the scene is
// only read.
func (r *Renderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) {
	t := &tracer{
		prims:   resolve(s.Instances()),
		lights:  s.Lights,
		eye:     cam.Position,
		bg:      s.Background.Vec(),
		shadows: r.shadows,
	}

	w, h := r.width, r.height
	var wg sync.WaitGroup
	for y := 0; y < h; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			ny := 1 - 2*(float64(y)+0.5)/float64(h)
			for x := 0; x < w; x++ {
				nx := 2*(float64(x)+0.5)/float64(w) - 1
				c := t.trace(cam.Position, cam.Ray(nx, ny))
				r.frame.SetRGBA(x, y, scene.ToRGBA(c))
			}
		}(y)
	}
	wg.Wait()
}

type tracer struct {
	prims   []primitive
	lights  []scene.Light
	eye     mgl64.Vec3
	bg      mgl64.Vec3
	shadows bool
}

func (t *tracer) nearest(origin, dir mgl64.Vec3) (primitive, float64, mgl64.Vec3) {
	var hit primitive
	best := math.Inf(1)
	var normal mgl64.Vec3
	for _, p := range t.prims {
		if d, n, ok := p.intersect(origin, dir); ok && d < best {
			hit, best, normal = p, d, n
		}
	}
	return hit, best, normal
}

func (t *tracer) trace(origin, dir mgl64.Vec3) mgl64.Vec3 {
	p, dist, n := t.nearest(origin, dir)
	if p == nil {
		return t.bg
	}
	point := origin.Add(dir.Mul(dist))
	m := p.mesh()

	var vis scene.Visibility
	if t.shadows && m.ReceiveShadow {
		vis = func(l scene.PointLight, at mgl64.Vec3) float64 {
			if l.CastShadow && t.occluded(at.Add(n.Mul(hitEpsilon*10)), l.Position) {
				return 0
			}
			return 1
		}
	}
	return scene.Shade(m.Material, point, n, t.eye, t.lights, vis)
}

// occluded reports whether a shadow caster lies between from and to.
func (t *tracer) occluded(from, to mgl64.Vec3) bool {
	d := to.Sub(from)
	limit := d.Len()
	dir := d.Mul(1 / limit)
	for _, p := range t.prims {
		if !p.mesh().CastShadow {
			continue
		}
		if dist, _, ok := p.intersect(from, dir); ok && dist < limit {
			return true
		}
	}
	return false
}
