package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Visibility reports how much of a point light reaches a surface point, in [0, 1].
type Visibility func(l PointLight, p mgl64.Vec3) float64

// Shade evaluates the Phong model at world point p with unit normal n, seen
// from eye. A nil vis treats every light as unobstructed.
func Shade(m Material, p, n, eye mgl64.Vec3, lights []Light, vis Visibility) mgl64.Vec3 {
	diffuse := m.Color.Vec()
	out := m.Emissive.Vec()

	view := eye.Sub(p).Normalize()
	if m.DoubleSide && n.Dot(view) < 0 {
		n = n.Mul(-1)
	}

	for _, l := range lights {
		switch l := l.(type) {
		case AmbientLight:
			out = out.Add(mul(diffuse, l.LightColor()))
		case PointLight:
			toLight := l.Position.Sub(p)
			dist := toLight.Len()
			if dist == 0 {
				continue
			}
			ld := toLight.Mul(1 / dist)
			ndl := n.Dot(ld)
			if ndl <= 0 {
				continue
			}
			k := l.Attenuation(dist)
			if vis != nil {
				k *= vis(l, p)
			}
			if k == 0 {
				continue
			}
			radiance := l.LightColor().Mul(k)
			out = out.Add(mul(diffuse, radiance).Mul(ndl))

			half := ld.Add(view).Normalize()
			if spec := math.Pow(math.Max(n.Dot(half), 0), m.Shininess); spec > 0 {
				out = out.Add(mul(m.Specular.Vec(), radiance).Mul(spec))
			}
		}
	}
	return out
}

func mul(a, b mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }
