package scene

import "github.com/go-gl/mathgl/mgl64"

// Geometry is an immutable shape description. Values are comparable, so two
// meshes built from the same template compare equal with ==.
type Geometry interface {
	// Offset is the translation baked into the geometry by Translate.
	Offset() mgl64.Vec3
	Kind() string
}

// Sphere is centred on its offset.
type Sphere struct {
	Radius         float64    `yaml:"radius"`
	WidthSegments  int        `yaml:"width_segments"`
	HeightSegments int        `yaml:"height_segments"`
	Translation    mgl64.Vec3 `yaml:"translation"`
}

func NewSphere(radius float64, widthSegments, heightSegments int) Sphere {
	return Sphere{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

func (s Sphere) Offset() mgl64.Vec3 { return s.Translation }
func (s Sphere) Kind() string       { return "sphere" }

// Translate returns a copy with the translation baked in.
func (s Sphere) Translate(x, y, z float64) Sphere {
	s.Translation = s.Translation.Add(mgl64.Vec3{x, y, z})
	return s
}

// Cylinder runs along the local Y axis, centred on its offset.
type Cylinder struct {
	RadiusTop      float64    `yaml:"radius_top"`
	RadiusBottom   float64    `yaml:"radius_bottom"`
	Height         float64    `yaml:"height"`
	RadialSegments int        `yaml:"radial_segments"`
	Translation    mgl64.Vec3 `yaml:"translation"`
}

func NewCylinder(radiusTop, radiusBottom, height float64, radialSegments int) Cylinder {
	return Cylinder{RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, RadialSegments: radialSegments}
}

func (c Cylinder) Offset() mgl64.Vec3 { return c.Translation }
func (c Cylinder) Kind() string       { return "cylinder" }

func (c Cylinder) Translate(x, y, z float64) Cylinder {
	c.Translation = c.Translation.Add(mgl64.Vec3{x, y, z})
	return c
}

// Ends returns the local bottom and top cap centres.
func (c Cylinder) Ends() (bottom, top mgl64.Vec3) {
	half := mgl64.Vec3{0, c.Height / 2, 0}
	return c.Translation.Sub(half), c.Translation.Add(half)
}

// Plane lies in the local XY plane facing +Z.
type Plane struct {
	Width          float64    `yaml:"width"`
	Height         float64    `yaml:"height"`
	WidthSegments  int        `yaml:"width_segments"`
	HeightSegments int        `yaml:"height_segments"`
	Translation    mgl64.Vec3 `yaml:"translation"`
}

func NewPlane(width, height float64, widthSegments, heightSegments int) Plane {
	return Plane{Width: width, Height: height, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

func (p Plane) Offset() mgl64.Vec3 { return p.Translation }
func (p Plane) Kind() string       { return "plane" }

func (p Plane) Translate(x, y, z float64) Plane {
	p.Translation = p.Translation.Add(mgl64.Vec3{x, y, z})
	return p
}

// Corners returns the four local corners counter-clockwise from bottom-left.
func (p Plane) Corners() [4]mgl64.Vec3 {
	hw, hh := p.Width/2, p.Height/2
	o := p.Translation
	return [4]mgl64.Vec3{
		o.Add(mgl64.Vec3{-hw, -hh, 0}),
		o.Add(mgl64.Vec3{hw, -hh, 0}),
		o.Add(mgl64.Vec3{hw, hh, 0}),
		o.Add(mgl64.Vec3{-hw, hh, 0}),
	}
}
