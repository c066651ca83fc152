package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/viewer"
)

func newViewer(t *testing.T, ms ...Metric) *viewer.Viewer {
	t.Helper()
	v, err := viewer.New(config.DefaultConfig(), &viewer.Headless{}, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range ms {
		v.AddSampler(m)
	}
	return v
}

func TestBondDriftStaysZeroWhileSpinning(t *testing.T) {
	m := NewBondDrift()
	v := newViewer(t, m)
	v.Step(500)

	if m.Value() > 1e-9 {
		t.Errorf("rigid molecule drifted by %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestBondDriftSeesDeformation(t *testing.T) {
	m := NewBondDrift()
	v := newViewer(t, m)
	v.Step(1)

	molecule.Units(v.Molecule)[0].Position[1] += 5
	v.Step(1)

	if math.Abs(m.Value()-5) > 1e-6 {
		t.Errorf("expected drift 5, got %f", m.Value())
	}
}

func TestClearance(t *testing.T) {
	m := NewClearance()
	if m.Value() != 0 {
		t.Errorf("expected 0 before any tick, got %f", m.Value())
	}

	v := newViewer(t, m)
	v.Step(300)

	limit := -molecule.GroundLevel - molecule.PeripheralRadius
	if m.Value() <= 0 || m.Value() >= limit {
		t.Errorf("expected clearance in (0, %f), got %f", limit, m.Value())
	}
}

func TestCameraTravel(t *testing.T) {
	m := NewCameraTravel()
	v := newViewer(t, m)

	v.Step(10)
	if m.Value() != 0 {
		t.Fatalf("camera moved without input: %f", m.Value())
	}

	v.Controls.RotateLeft(math.Pi / 2)
	v.Step(1)

	want := config.DefaultDistance * math.Sqrt2
	if math.Abs(m.Value()-want) > 1e-6 {
		t.Errorf("expected travel %f, got %f", want, m.Value())
	}
}

func TestCollect(t *testing.T) {
	ms := Standard()
	v := newViewer(t, ms...)
	v.Step(5)

	got := Collect(ms)
	for _, name := range []string{"bond_drift", "ground_clearance", "camera_travel"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}
