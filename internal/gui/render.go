package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

const shadowLift = 0.1

var shadowColor = rl.NewColor(0, 0, 0, 110)

// Window is the viewer surface for the raylib window. Render must run
// between BeginDrawing and EndDrawing.
type Window struct {
	width, height int
	shadows       bool
}

func NewWindow() *Window { return &Window{shadows: true} }

func (w *Window) SetSize(width, height int) { w.width, w.height = width, height }
func (w *Window) Size() (int, int)          { return w.width, w.height }
func (w *Window) SetShadows(on bool)        { w.shadows = on }
func (w *Window) Shadows() bool             { return w.shadows }

func vec(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func camera3D(cam *scene.PerspectiveCamera) rl.Camera3D {
	return rl.NewCamera3D(vec(cam.Position), vec(cam.Target), vec(cam.Up), float32(cam.FOV), rl.CameraPerspective)
}

func (w *Window) Render(s *scene.Scene, cam *scene.PerspectiveCamera) {
	rl.ClearBackground(s.Background.RGBA8())
	rl.BeginMode3D(camera3D(cam))

	instances := s.Instances()
	for _, in := range instances {
		w.drawInstance(s, cam, in)
	}
	if w.shadows {
		w.drawShadows(s, instances)
	}

	rl.EndMode3D()
}

// keyColor shades a whole mesh with one colour, taken where the surface
// faces halfway between the eye and the first point light.
func keyColor(s *scene.Scene, cam *scene.PerspectiveCamera, m scene.Material, centre, normal mgl64.Vec3, radius float64) color.RGBA {
	if normal == (mgl64.Vec3{}) {
		normal = cam.Position.Sub(centre).Normalize()
		if pl := s.PointLights(); len(pl) > 0 {
			normal = normal.Add(pl[0].Position.Sub(centre).Normalize()).Normalize()
		}
	}
	return scene.ToRGBA(scene.Shade(m, centre.Add(normal.Mul(radius)), normal, cam.Position, s.Lights, nil))
}

func (w *Window) drawInstance(s *scene.Scene, cam *scene.PerspectiveCamera, in scene.Instance) {
	m := in.Mesh.Material
	scale := scene.TransformDir(in.World, scene.AxisX).Len()

	switch g := in.Mesh.Geometry.(type) {
	case scene.Sphere:
		c := scene.TransformPoint(in.World, g.Offset())
		r := g.Radius * scale
		rl.DrawSphereEx(vec(c), float32(r), int32(g.HeightSegments), int32(g.WidthSegments), keyColor(s, cam, m, c, mgl64.Vec3{}, r))

	case scene.Cylinder:
		bottom, top := g.Ends()
		p1, p2 := scene.TransformPoint(in.World, bottom), scene.TransformPoint(in.World, top)
		mid := p1.Add(p2).Mul(0.5)
		col := keyColor(s, cam, m, mid, mgl64.Vec3{}, g.RadiusBottom*scale)
		rl.DrawCylinderEx(vec(p1), vec(p2), float32(g.RadiusBottom*scale), float32(g.RadiusTop*scale), int32(g.RadialSegments), col)

	case scene.Plane:
		var v [4]rl.Vector3
		for i, p := range g.Corners() {
			v[i] = vec(scene.TransformPoint(in.World, p))
		}
		n := scene.TransformDir(in.World, scene.AxisZ).Normalize()
		col := keyColor(s, cam, m, scene.TransformPoint(in.World, g.Offset()), n, 0)
		rl.DrawTriangle3D(v[0], v[1], v[2], col)
		rl.DrawTriangle3D(v[0], v[2], v[3], col)
		if m.DoubleSide {
			rl.DrawTriangle3D(v[0], v[2], v[1], col)
			rl.DrawTriangle3D(v[0], v[3], v[2], col)
		}
	}
}

// drawShadows flattens every shadow caster onto every receiving plane along
// rays from the shadow-casting point lights.
func (w *Window) drawShadows(s *scene.Scene, instances []scene.Instance) {
	for _, l := range s.PointLights() {
		if !l.CastShadow {
			continue
		}
		for _, recv := range instances {
			g, ok := recv.Mesh.Geometry.(scene.Plane)
			if !ok || !recv.Mesh.ReceiveShadow {
				continue
			}
			origin := scene.TransformPoint(recv.World, g.Offset())
			n := scene.TransformDir(recv.World, scene.AxisZ).Normalize()
			if n.Dot(l.Position.Sub(origin)) < 0 {
				n = n.Mul(-1)
			}
			lift := n.Mul(shadowLift)

			for _, in := range instances {
				if !in.Mesh.CastShadow {
					continue
				}
				w.drawShadow(l.Position, origin, n, lift, in)
			}
		}
	}
}

func (w *Window) drawShadow(light, origin, n, lift mgl64.Vec3, in scene.Instance) {
	scale := scene.TransformDir(in.World, scene.AxisX).Len()
	switch g := in.Mesh.Geometry.(type) {
	case scene.Sphere:
		c := scene.TransformPoint(in.World, g.Offset())
		p, ok := scene.ProjectToPlane(light, c, origin, n)
		if !ok {
			return
		}
		// similar triangles through the light
		r := g.Radius * scale * p.Sub(light).Len() / c.Sub(light).Len()
		rl.DrawCylinderEx(vec(p), vec(p.Add(lift)), float32(r), float32(r), int32(g.WidthSegments), shadowColor)

	case scene.Cylinder:
		bottom, top := g.Ends()
		p1, ok1 := scene.ProjectToPlane(light, scene.TransformPoint(in.World, bottom), origin, n)
		p2, ok2 := scene.ProjectToPlane(light, scene.TransformPoint(in.World, top), origin, n)
		if !ok1 || !ok2 {
			return
		}
		r := float32(g.RadiusBottom * scale)
		rl.DrawCylinderEx(vec(p1.Add(lift)), vec(p2.Add(lift)), r, r, int32(g.RadialSegments), shadowColor)
	}
}
