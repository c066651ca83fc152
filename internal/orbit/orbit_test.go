package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
)

func newCamera() *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(75, 16.0/9, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 250}
	return cam
}

func TestUpdateIdleLeavesCamera(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	for i := 0; i < 10; i++ {
		if c.Update() {
			t.Fatal("expected no movement without input")
		}
	}
	if cam.Position != (mgl64.Vec3{0, 0, 250}) {
		t.Errorf("camera moved to %v", cam.Position)
	}
}

func TestRotateLeftKeepsDistance(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	c.RotateLeft(-math.Pi / 2)
	if !c.Update() {
		t.Fatal("expected movement")
	}
	if math.Abs(cam.Position.Len()-250) > 1e-9 {
		t.Errorf("expected distance 250, got %f", cam.Position.Len())
	}
	if math.Abs(cam.Position[0]-250) > 1e-9 {
		t.Errorf("expected camera on +X, got %v", cam.Position)
	}
}

func TestPolarClamp(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	c.RotateUp(10)
	c.Update()
	if cam.Position[1] >= 250 || cam.Position[1] <= 0 {
		t.Errorf("expected camera clamped just below the pole, got %v", cam.Position)
	}
}

func TestDolly(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	c.MinDistance = 100
	c.Dolly(1)
	c.Update()
	if got := cam.Position.Len(); math.Abs(got-250*0.95) > 1e-9 {
		t.Errorf("expected distance %f, got %f", 250*0.95, got)
	}

	c.Dolly(100)
	c.Update()
	if got := cam.Position.Len(); math.Abs(got-100) > 1e-9 {
		t.Errorf("expected clamp at 100, got %f", got)
	}
}

func TestPanMovesTarget(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	c.Pan(-10, 0, 720)
	c.Update()
	if c.Target[0] <= 0 {
		t.Errorf("expected target shifted to +X, got %v", c.Target)
	}
	if cam.Target != c.Target {
		t.Error("camera should look at the new target")
	}
}

func TestDampingConverges(t *testing.T) {
	cam := newCamera()
	c := New(cam)
	c.EnableDamping = true
	c.RotateLeft(-0.5)

	c.Update()
	first := math.Atan2(cam.Position[0], cam.Position[2])
	if math.Abs(first-0.5*c.DampingFactor) > 1e-9 {
		t.Errorf("expected first step %f, got %f", 0.5*c.DampingFactor, first)
	}
	for i := 0; i < 2000; i++ {
		c.Update()
	}
	final := math.Atan2(cam.Position[0], cam.Position[2])
	if math.Abs(final-0.5) > 1e-6 {
		t.Errorf("expected total rotation 0.5, got %f", final)
	}
	if !c.idle() {
		t.Error("expected damped input to settle")
	}
}
