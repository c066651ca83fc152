package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) R() float64 { return float64(c>>16&0xff) / 255 }
func (c Color) G() float64 { return float64(c>>8&0xff) / 255 }
func (c Color) B() float64 { return float64(c&0xff) / 255 }

// Vec returns the channels in [0, 1].
func (c Color) Vec() mgl64.Vec3 { return mgl64.Vec3{c.R(), c.G(), c.B()} }

func (c Color) RGBA8() color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
}

func (c Color) String() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

func (c Color) MarshalYAML() (interface{}, error) { return c.String(), nil }

// ToRGBA clamps a linear colour vector to 8-bit channels.
func ToRGBA(v mgl64.Vec3) color.RGBA {
	return color.RGBA{channel(v[0]), channel(v[1]), channel(v[2]), 0xff}
}

func channel(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(f*255 + 0.5)
}

// Material is a Phong surface description.
type Material struct {
	Name       string  `yaml:"name"`
	Color      Color   `yaml:"color"`
	Emissive   Color   `yaml:"emissive"`
	Specular   Color   `yaml:"specular"`
	Shininess  float64 `yaml:"shininess"`
	DoubleSide bool    `yaml:"double_side"`
}

const (
	DefaultSpecular  Color = 0x111111
	DefaultShininess       = 30.0
)

// NewPhong returns a material with the usual specular defaults.
func NewPhong(name string, c, emissive Color) Material {
	return Material{
		Name:      name,
		Color:     c,
		Emissive:  emissive,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}
