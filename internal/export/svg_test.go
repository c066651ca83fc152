package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/molview/internal/analysis"
	"github.com/san-kum/molview/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10, "#00ff00")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("unexpected size:\n%s", svg)
	}
	if !strings.Contains(svg, `cx="35.0" cy="35.0"`) {
		t.Errorf("dot (3,3) misplaced:\n%s", svg)
	}
	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	p := analysis.NewPortrait("h1_x", []float64{0, 1, 2}, "h1_z", []float64{0, 1, 0})
	svg := TrajectoryToSVG(p, 200, 100, "#ff00ff")
	if !strings.Contains(svg, `stroke="#ff00ff"`) {
		t.Error("missing stroke colour")
	}
	if n := strings.Count(svg, " L"); n != 2 {
		t.Errorf("segments = %d, want 2", n)
	}
	if !strings.Contains(svg, "h1_z vs h1_x") {
		t.Error("missing label")
	}

	one := analysis.NewPortrait("x", []float64{1}, "y", []float64{1})
	if TrajectoryToSVG(one, 10, 10, "#fff") != "" {
		t.Error("a single point is not a trajectory")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, ""); err == nil {
		t.Error("expected error for empty svg")
	}
	if err := Write(&buf, "<svg/>"); err != nil || buf.String() != "<svg/>" {
		t.Errorf("Write = %v, %q", err, buf.String())
	}
}
