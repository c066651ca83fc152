package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

const hitEpsilon = 1e-4

// primitive is a mesh resolved into world space.
type primitive interface {
	// intersect returns the nearest hit distance along a unit ray and the
	// surface normal there.
	intersect(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool)
	mesh() *scene.Mesh
}

type sphere struct {
	m      *scene.Mesh
	center mgl64.Vec3
	radius float64
}

func (s sphere) mesh() *scene.Mesh { return s.m }

func (s sphere) intersect(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	oc := origin.Sub(s.center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.radius*s.radius
	disc := b*b - c
	if disc < 0 {
		return 0, mgl64.Vec3{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t <= hitEpsilon {
		t = -b + sq
		if t <= hitEpsilon {
			return 0, mgl64.Vec3{}, false
		}
	}
	n := origin.Add(dir.Mul(t)).Sub(s.center).Mul(1 / s.radius)
	return t, n, true
}

type cylinder struct {
	m      *scene.Mesh
	p1, p2 mgl64.Vec3
	radius float64
}

func (c cylinder) mesh() *scene.Mesh { return c.m }

func (c cylinder) intersect(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	axis := c.p2.Sub(c.p1)
	length := axis.Len()
	if length == 0 {
		return 0, mgl64.Vec3{}, false
	}
	axis = axis.Mul(1 / length)

	best := math.Inf(1)
	var normal mgl64.Vec3

	// side
	dp := origin.Sub(c.p1)
	dPerp := dir.Sub(axis.Mul(dir.Dot(axis)))
	pPerp := dp.Sub(axis.Mul(dp.Dot(axis)))
	a := dPerp.Dot(dPerp)
	if a > 1e-12 {
		b := 2 * dPerp.Dot(pPerp)
		cc := pPerp.Dot(pPerp) - c.radius*c.radius
		if disc := b*b - 4*a*cc; disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t <= hitEpsilon || t >= best {
					continue
				}
				hit := origin.Add(dir.Mul(t))
				proj := hit.Sub(c.p1).Dot(axis)
				if proj < 0 || proj > length {
					continue
				}
				best = t
				normal = hit.Sub(c.p1.Add(axis.Mul(proj))).Normalize()
			}
		}
	}

	// caps
	if denom := dir.Dot(axis); math.Abs(denom) > 1e-12 {
		for _, end := range []struct {
			centre mgl64.Vec3
			n      mgl64.Vec3
		}{{c.p1, axis.Mul(-1)}, {c.p2, axis}} {
			t := end.centre.Sub(origin).Dot(axis) / denom
			if t <= hitEpsilon || t >= best {
				continue
			}
			if origin.Add(dir.Mul(t)).Sub(end.centre).Len() <= c.radius {
				best = t
				normal = end.n
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, mgl64.Vec3{}, false
	}
	return best, normal, true
}

type plane struct {
	m              *scene.Mesh
	centre, normal mgl64.Vec3
	u, v           mgl64.Vec3
	halfW, halfH   float64
}

func (p plane) mesh() *scene.Mesh { return p.m }

func (p plane) intersect(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	denom := dir.Dot(p.normal)
	if math.Abs(denom) < 1e-12 {
		return 0, mgl64.Vec3{}, false
	}
	if denom > 0 && !p.m.Material.DoubleSide {
		return 0, mgl64.Vec3{}, false
	}
	t := p.centre.Sub(origin).Dot(p.normal) / denom
	if t <= hitEpsilon {
		return 0, mgl64.Vec3{}, false
	}
	d := origin.Add(dir.Mul(t)).Sub(p.centre)
	if math.Abs(d.Dot(p.u)) > p.halfW || math.Abs(d.Dot(p.v)) > p.halfH {
		return 0, mgl64.Vec3{}, false
	}
	return t, p.normal, true
}

// resolve converts scene instances into world-space primitives.
func resolve(instances []scene.Instance) []primitive {
	out := make([]primitive, 0, len(instances))
	for _, in := range instances {
		scale := scene.TransformDir(in.World, scene.AxisX).Len()
		switch g := in.Mesh.Geometry.(type) {
		case scene.Sphere:
			out = append(out, sphere{
				m:      in.Mesh,
				center: scene.TransformPoint(in.World, g.Offset()),
				radius: g.Radius * scale,
			})
		case scene.Cylinder:
			bottom, top := g.Ends()
			out = append(out, cylinder{
				m:      in.Mesh,
				p1:     scene.TransformPoint(in.World, bottom),
				p2:     scene.TransformPoint(in.World, top),
				radius: (g.RadiusTop + g.RadiusBottom) / 2 * scale,
			})
		case scene.Plane:
			u := scene.TransformDir(in.World, scene.AxisX)
			v := scene.TransformDir(in.World, scene.AxisY)
			out = append(out, plane{
				m:      in.Mesh,
				centre: scene.TransformPoint(in.World, g.Offset()),
				normal: scene.TransformDir(in.World, scene.AxisZ).Normalize(),
				u:      u.Normalize(),
				v:      v.Normalize(),
				halfW:  g.Width / 2 * u.Len(),
				halfH:  g.Height / 2 * v.Len(),
			})
		}
	}
	return out
}
