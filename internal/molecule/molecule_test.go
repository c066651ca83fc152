package molecule

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

// near compares component-wise with an absolute tolerance, so exact zeros
// accept rounding residue.
func near(a, b mgl64.Vec3, eps float64) bool { return nearSlice(a[:], b[:], eps) }

func nearSlice(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestNearAbsorbsResidueAtZero(t *testing.T) {
	got := mgl64.Vec3{0, 1, 2.220446049250313e-16}
	if !near(got, scene.AxisY, 1e-9) {
		t.Error("expected rounding residue on a zero component to compare equal")
	}
	if near(mgl64.Vec3{0, 1, 1e-6}, scene.AxisY, 1e-9) {
		t.Error("expected a real difference to be reported")
	}
}

func TestBuildStructure(t *testing.T) {
	mol := Build()
	children := mol.Children()
	if len(children) != 5 {
		t.Fatalf("expected 5 children, got %d", len(children))
	}
	if children[0].Mesh == nil || children[0].Mesh.Geometry.Kind() != "sphere" {
		t.Error("expected the central atom mesh first")
	}
	for i, u := range Units(mol) {
		if u.Mesh != nil {
			t.Errorf("unit %d: expected a group node", i)
		}
		if len(u.Children()) != 2 {
			t.Errorf("unit %d: expected atom and bond, got %d children", i, len(u.Children()))
		}
	}
}

func TestUnitsShareGeometryAndMaterial(t *testing.T) {
	units := Units(Build())
	first := units[0]
	for i, u := range units[1:] {
		for j := range first.Children() {
			a, b := first.Children()[j].Mesh, u.Children()[j].Mesh
			if a.Geometry != b.Geometry {
				t.Errorf("unit %d child %d: geometry differs", i+1, j)
			}
			if a.Material != b.Material {
				t.Errorf("unit %d child %d: material differs", i+1, j)
			}
			if first.Children()[j].LocalMatrix() != u.Children()[j].LocalMatrix() {
				t.Errorf("unit %d child %d: inner transform differs", i+1, j)
			}
		}
	}
}

func TestUnitsDifferOnlyInTransform(t *testing.T) {
	units := Units(Build())
	seen := map[mgl64.Mat4]int{}
	for i, u := range units {
		m := u.LocalMatrix()
		if j, ok := seen[m]; ok {
			t.Errorf("units %d and %d have the same transform", j, i)
		}
		seen[m] = i
	}
}

func TestUnitPlacements(t *testing.T) {
	units := Units(Build())
	want := []mgl64.Vec3{
		{0, 15, 0},
		{10, -10, -10},
		{0, -12, 12},
		{-10, -10, -10},
	}
	for i, u := range units {
		if u.Position != want[i] {
			t.Errorf("unit %d: expected position %v, got %v", i, want[i], u.Position)
		}
	}
	if units[0].Rotation != (scene.Euler{}) {
		t.Errorf("unit 0: expected no rotation, got %+v", units[0].Rotation)
	}
	if math.Abs(units[2].Rotation.X-math.Pi*3/4) > 1e-9 {
		t.Errorf("unit 2: expected rotation.x 3pi/4, got %f", units[2].Rotation.X)
	}
}

func TestTranslationOrderDoesNotMatter(t *testing.T) {
	tmpl := Template()
	a := MakePeripheralUnit(tmpl, RotateZ(math.Pi*2/3), RotateX(math.Pi*7/4), SetX(-10), SetZ(-10), SetY(-10))
	b := MakePeripheralUnit(tmpl, SetX(-10), SetZ(-10), SetY(-10), RotateZ(math.Pi*2/3), RotateX(math.Pi*7/4))
	am, bm := a.LocalMatrix(), b.LocalMatrix()
	if !nearSlice(am[:], bm[:], 1e-12) {
		t.Error("expected position and rotation ops to commute")
	}
}

func TestTemplateUntouchedByPlacement(t *testing.T) {
	tmpl := Template()
	MakePeripheralUnit(tmpl, SetY(15), RotateX(1))
	if tmpl.Position != (mgl64.Vec3{}) || tmpl.Rotation != (scene.Euler{}) {
		t.Error("template was mutated")
	}
}

func TestPeripheralCenters(t *testing.T) {
	mol := Build()
	centers := PeripheralCenters(mol)
	if len(centers) != 4 {
		t.Fatalf("expected 4 centers, got %d", len(centers))
	}
	if !near(centers[0], mgl64.Vec3{0, 45, 0}, 1e-9) {
		t.Errorf("unit 0: expected atom at (0, 45, 0), got %v", centers[0])
	}
	for i, c := range centers {
		if c.Len() < CentralRadius {
			t.Errorf("unit %d: atom inside the central atom at %v", i, c)
		}
	}
}

func TestGround(t *testing.T) {
	g := Ground()
	if !g.Mesh.ReceiveShadow || g.Mesh.CastShadow {
		t.Error("ground should receive but not cast shadows")
	}
	n := scene.TransformDir(g.WorldMatrix(), scene.AxisZ)
	if !near(n, scene.AxisY, 1e-9) {
		t.Errorf("expected ground normal +Y, got %v", n)
	}
}

func TestMeshesCastShadows(t *testing.T) {
	Build().Traverse(func(n *scene.Node) {
		if n.Mesh != nil && (!n.Mesh.CastShadow || !n.Mesh.ReceiveShadow) {
			t.Errorf("%s: expected cast and receive shadows", n.Name)
		}
	})
}
