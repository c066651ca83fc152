package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func sine(n int, period float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 3 + 45*math.Sin(2*math.Pi*float64(i)/period)
	}
	return out
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		period   float64
		interval float64
		want     float64
	}{
		{"unit interval", 1024, 64, 1, 64},
		{"sampled every 4 ticks", 512, 32, 4, 128},
		{"non power of two", 600, 50, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peak, err := DominantPeriod(sine(tt.n, tt.period), tt.interval)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(peak.Period-tt.want) > 1e-9 {
				t.Errorf("period = %v, want %v", peak.Period, tt.want)
			}
			if math.Abs(peak.Frequency*peak.Period-1) > 1e-12 {
				t.Errorf("frequency %v inconsistent with period", peak.Frequency)
			}
		})
	}
}

func TestDominantPeriodBetweenBins(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		period float64
	}{
		{"fractional cycles", sine(1000, 37.3), 37.3},
		// 12.5 cycles: the fundamental splits across two bins while the
		// second harmonic lands on one.
		{"strong second harmonic", harmonics(1571, 125.66), 125.66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peak, err := DominantPeriod(tt.data, 1)
			if err != nil {
				t.Fatal(err)
			}
			if rel := math.Abs(peak.Period-tt.period) / tt.period; rel > 0.01 {
				t.Errorf("period = %v, want %v", peak.Period, tt.period)
			}
		})
	}
}

func harmonics(n int, period float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		th := 2 * math.Pi * float64(i) / period
		out[i] = 45*math.Sin(th) + 30*math.Cos(2*th)
	}
	return out
}

func TestDominantPeriodFlat(t *testing.T) {
	peak, err := DominantPeriod([]float64{2, 2, 2, 2, 2, 2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if peak != (Peak{}) {
		t.Errorf("flat series peak = %+v", peak)
	}
}

func TestTooShort(t *testing.T) {
	if _, err := PowerSpectrum([]float64{1, 2, 3}); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	if _, err := FitRate([]float64{1}, []float64{1}); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestFitRate(t *testing.T) {
	ticks := make([]float64, 100)
	rot := make([]float64, 100)
	for i := range ticks {
		ticks[i] = float64(i + 1)
		rot[i] = 0.005 * float64(i+1)
	}
	rate, err := FitRate(ticks, rot)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rate-0.005) > 1e-12 {
		t.Errorf("rate = %v", rate)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.Min != 1 || s.Max != 4 || s.Mean != 2.5 || s.N != 4 {
		t.Errorf("summary = %+v", s)
	}
	if math.Abs(s.Std-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("std = %v", s.Std)
	}
	if Summarize(nil) != (Summary{}) {
		t.Error("empty summary should be zero")
	}
}

func TestPortraitASCII(t *testing.T) {
	xs, ys := make([]float64, 64), make([]float64, 64)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / 64
		xs[i], ys[i] = math.Cos(a), math.Sin(a)
	}
	p := NewPortrait("x", xs, "y", ys[:60])
	if len(p.Points) != 60 {
		t.Fatalf("points = %d", len(p.Points))
	}

	out := p.ASCII(20, 10)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d", len(lines))
	}
	if !strings.Contains(out, "•") || !strings.Contains(out, "│") || !strings.Contains(out, "─") {
		t.Errorf("missing points or axes:\n%s", out)
	}
	if (&Portrait{}).ASCII(10, 10) != "" {
		t.Error("empty portrait should render nothing")
	}
}
