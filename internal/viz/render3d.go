package viz

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

// bayer is a 4x4 ordered dither matrix, normalised to (0, 1).
var bayer = [4][4]float64{
	{0.5 / 16, 8.5 / 16, 2.5 / 16, 10.5 / 16},
	{12.5 / 16, 4.5 / 16, 14.5 / 16, 6.5 / 16},
	{3.5 / 16, 11.5 / 16, 1.5 / 16, 9.5 / 16},
	{15.5 / 16, 7.5 / 16, 13.5 / 16, 5.5 / 16},
}

const gridLines = 10

// WireSurface draws the scene onto a braille Canvas: shaded dithered discs
// for spheres, lines for cylinders and a wire grid for planes. Sizes are in
// sub-pixels.
type WireSurface struct {
	canvas *Canvas
	width  int
	height int
}

func NewWireSurface(width, height int) *WireSurface {
	s := &WireSurface{}
	s.SetSize(width, height)
	return s
}

func (s *WireSurface) SetSize(width, height int) {
	cols, rows := (width+1)/2, (height+3)/4
	s.width, s.height = width, height
	if s.canvas != nil && s.canvas.Width == cols && s.canvas.Height == rows {
		return
	}
	s.canvas = NewCanvas(cols, rows)
}

func (s *WireSurface) Size() (int, int) { return s.width, s.height }
func (s *WireSurface) Canvas() *Canvas  { return s.canvas }

type drawable struct {
	depth float64
	draw  func()
}

// Render paints back to front. Planes always go first.
func (s *WireSurface) Render(sc *scene.Scene, cam *scene.PerspectiveCamera) {
	s.canvas.Clear()

	var items []drawable
	for _, in := range sc.Instances() {
		in := in
		switch g := in.Mesh.Geometry.(type) {
		case scene.Plane:
			s.drawGrid(cam, in.World, g)
		case scene.Sphere:
			centre := scene.TransformPoint(in.World, g.Offset())
			radius := g.Radius * scene.TransformDir(in.World, scene.AxisX).Len()
			x, y, depth, ok := cam.Project(centre, s.width, s.height)
			if !ok {
				continue
			}
			items = append(items, drawable{depth, func() {
				s.drawSphere(sc, cam, in.Mesh.Material, centre, radius, x, y, depth)
			}})
		case scene.Cylinder:
			bottom, top := g.Ends()
			x0, y0, d0, ok0 := cam.Project(scene.TransformPoint(in.World, bottom), s.width, s.height)
			x1, y1, d1, ok1 := cam.Project(scene.TransformPoint(in.World, top), s.width, s.height)
			if !ok0 || !ok1 {
				continue
			}
			items = append(items, drawable{(d0 + d1) / 2, func() {
				s.canvas.DrawLine(round(x0), round(y0), round(x1), round(y1))
			}})
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, it := range items {
		it.draw()
	}
}

func (s *WireSurface) drawGrid(cam *scene.PerspectiveCamera, world mgl64.Mat4, g scene.Plane) {
	hw, hh := g.Width/2, g.Height/2
	line := func(a, b mgl64.Vec3) {
		x0, y0, _, ok0 := cam.Project(scene.TransformPoint(world, a.Add(g.Offset())), s.width, s.height)
		x1, y1, _, ok1 := cam.Project(scene.TransformPoint(world, b.Add(g.Offset())), s.width, s.height)
		if ok0 && ok1 {
			s.canvas.DrawLine(round(x0), round(y0), round(x1), round(y1))
		}
	}
	for i := 0; i <= gridLines; i++ {
		f := float64(i)/gridLines*2 - 1
		line(mgl64.Vec3{f * hw, -hh, 0}, mgl64.Vec3{f * hw, hh, 0})
		line(mgl64.Vec3{-hw, f * hh, 0}, mgl64.Vec3{hw, f * hh, 0})
	}
}

// drawSphere clears the disc, dithers the Phong-shaded surface into it and
// outlines it.
func (s *WireSurface) drawSphere(sc *scene.Scene, cam *scene.PerspectiveCamera, m scene.Material, centre mgl64.Vec3, radius, x, y, depth float64) {
	r := radius * cam.PixelScale(depth, s.height)
	cx, cy, ri := round(x), round(y), int(math.Ceil(r))
	s.canvas.ClearDisk(cx, cy, ri)

	forward, right, up := cam.Basis()
	for py := cy - ri; py <= cy+ri; py++ {
		for px := cx - ri; px <= cx+ri; px++ {
			nx, ny := float64(px-cx)/r, float64(cy-py)/r
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			nz := math.Sqrt(1 - d)
			n := right.Mul(nx).Add(up.Mul(ny)).Sub(forward.Mul(nz))
			c := scene.Shade(m, centre.Add(n.Mul(radius)), n, cam.Position, sc.Lights, nil)
			if brightness(c) > bayer[absInt(py)%4][absInt(px)%4] {
				s.canvas.Set(px, py)
			}
		}
	}
	s.canvas.DrawCircle(cx, cy, ri)
}

// brightness is the strongest channel; the canvas has no hue.
func brightness(c mgl64.Vec3) float64 {
	return math.Max(c[0], math.Max(c[1], c[2]))
}

func round(f float64) int { return int(math.Round(f)) }
