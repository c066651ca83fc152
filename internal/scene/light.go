package scene

import "github.com/go-gl/mathgl/mgl64"

type Light interface {
	LightColor() mgl64.Vec3
}

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     Color   `yaml:"color"`
	Intensity float64 `yaml:"intensity"`
}

func (l AmbientLight) LightColor() mgl64.Vec3 { return l.Color.Vec().Mul(l.Intensity) }

// PointLight emits from a position in world space. Distance 0 disables
// attenuation.
type PointLight struct {
	Color      Color      `yaml:"color"`
	Intensity  float64    `yaml:"intensity"`
	Distance   float64    `yaml:"distance"`
	Position   mgl64.Vec3 `yaml:"position"`
	CastShadow bool       `yaml:"cast_shadow"`
}

func (l PointLight) LightColor() mgl64.Vec3 { return l.Color.Vec().Mul(l.Intensity) }

// Attenuation returns the falloff factor at distance d.
func (l PointLight) Attenuation(d float64) float64 {
	if l.Distance <= 0 {
		return 1
	}
	if d >= l.Distance {
		return 0
	}
	f := 1 - d/l.Distance
	return f * f
}
