// Package molecule assembles the methane model: a central atom with four
// atom-bond units placed around it, plus the ground plane and lights it is
// shown with.
package molecule

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

const (
	CentralRadius    = 20.0
	PeripheralRadius = 7.0
	BondRadius       = 3.0
	BondLength       = 30.0

	// PeripheralOffset is how far the peripheral atom sits from its unit origin.
	PeripheralOffset = 30.0

	GroundSize  = 300.0
	GroundLevel = -60.0
)

var (
	CentralMaterial    = scene.NewPhong("central", 0xff0000, 0x330000)
	PeripheralMaterial = scene.NewPhong("peripheral", 0x038dff, 0x000033)
	BondMaterial       = scene.NewPhong("bond", 0xffffff, 0x111111)
	GroundMaterial     = groundMaterial()
)

func groundMaterial() scene.Material {
	m := scene.NewPhong("ground", 0x00ff00, 0x000000)
	m.DoubleSide = true
	return m
}

// Op is one step of a unit placement.
type Op func(n *scene.Node)

func SetX(v float64) Op { return func(n *scene.Node) { n.Position[0] = v } }
func SetY(v float64) Op { return func(n *scene.Node) { n.Position[1] = v } }
func SetZ(v float64) Op { return func(n *scene.Node) { n.Position[2] = v } }

func RotateX(a float64) Op { return func(n *scene.Node) { n.RotateX(a) } }
func RotateZ(a float64) Op { return func(n *scene.Node) { n.RotateZ(a) } }

// Placements positions the four units. Each list is applied in order.
var Placements = [4][]Op{
	{SetY(15)},
	{SetX(10), SetY(-10), SetZ(-10), RotateZ(math.Pi * 4 / 3), RotateX(math.Pi * 7 / 4)},
	{SetY(-12), SetZ(12), RotateX(math.Pi * 3 / 4)},
	{RotateZ(math.Pi * 2 / 3), RotateX(math.Pi * 7 / 4), SetX(-10), SetZ(-10), SetY(-10)},
}

// CentralAtom returns the central atom mesh.
func CentralAtom() *scene.Node {
	n := scene.NewMeshNode("central", scene.NewSphere(CentralRadius, 32, 32), CentralMaterial)
	n.SetShadows(true, true)
	return n
}

// Template builds the atom-bond unit every placement is cloned from. The
// peripheral atom is its first child, the bond its second.
func Template() *scene.Node {
	atom := scene.NewMeshNode("peripheral",
		scene.NewSphere(PeripheralRadius, 16, 16).Translate(0, PeripheralOffset, 0),
		PeripheralMaterial)
	bond := scene.NewMeshNode("bond",
		scene.NewCylinder(BondRadius, BondRadius, BondLength, 16).Translate(0, BondLength/2, 0),
		BondMaterial)

	unit := scene.NewNode("unit")
	unit.Add(atom)
	unit.Add(bond)
	unit.SetShadows(true, true)
	return unit
}

// MakePeripheralUnit clones template and applies ops in order.
func MakePeripheralUnit(template *scene.Node, ops ...Op) *scene.Node {
	u := template.Clone()
	for _, op := range ops {
		op(u)
	}
	return u
}

// Build returns the molecule node: the central atom followed by the four
// units from Placements.
func Build() *scene.Node {
	mol := scene.NewNode("molecule")
	mol.Add(CentralAtom())

	tmpl := Template()
	for _, ops := range Placements {
		mol.Add(MakePeripheralUnit(tmpl, ops...))
	}
	return mol
}

// Units returns the atom-bond units of a molecule built by Build.
func Units(mol *scene.Node) []*scene.Node {
	c := mol.Children()
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// PeripheralCenters returns the world position of each peripheral atom.
func PeripheralCenters(mol *scene.Node) []mgl64.Vec3 {
	units := Units(mol)
	out := make([]mgl64.Vec3, 0, len(units))
	for _, u := range units {
		atom := u.Children()[0]
		out = append(out, scene.TransformPoint(atom.WorldMatrix(), atom.Mesh.Geometry.Offset()))
	}
	return out
}

// Ground returns the shadow-receiving floor below the molecule.
func Ground() *scene.Node {
	n := scene.NewMeshNode("ground", scene.NewPlane(GroundSize, GroundSize, 32, 32), GroundMaterial)
	n.SetPosition(0, GroundLevel, 0)
	n.Rotation.X = -math.Pi / 2
	n.Mesh.ReceiveShadow = true
	return n
}

// Lights returns the ambient fill and the shadow-casting key light.
func Lights() []scene.Light {
	return []scene.Light{
		scene.AmbientLight{Color: 0x404040, Intensity: 1},
		scene.PointLight{
			Color:      0xffffff,
			Intensity:  1,
			Position:   mgl64.Vec3{0, 100, 10},
			CastShadow: true,
		},
	}
}
