package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MinSamples is the shortest series the spectral functions accept.
const MinSamples = 4

var ErrTooShort = errors.New("analysis: series too short")

// PowerSpectrum returns the magnitude of bins 0..n/2 of the DFT of data with
// its mean removed and a periodic Hann window applied. The window keeps a
// component that does not fill a whole number of cycles from leaking into
// its harmonics.
func PowerSpectrum(data []float64) ([]float64, error) {
	if len(data) < MinSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrTooShort, len(data))
	}
	mean := Summarize(data).Mean
	n := float64(len(data))
	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = (v - mean) * 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/n))
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(data)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps, nil
}

// Peak is the strongest non-DC spectral component.
type Peak struct {
	Bin       int
	Magnitude float64
	// Frequency in cycles per tick, interpolated between bins.
	Frequency float64
	// Period in ticks.
	Period float64
}

// DominantPeriod finds the strongest periodic component of data sampled every
// interval ticks. A flat series has no peak and returns a zero Peak.
func DominantPeriod(data []float64, interval float64) (Peak, error) {
	ps, err := PowerSpectrum(data)
	if err != nil {
		return Peak{}, err
	}
	if interval <= 0 {
		interval = 1
	}

	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if ps[best] < 1e-9 {
		return Peak{}, nil
	}

	bin := float64(best) + refine(ps, best)
	span := float64(len(data)) * interval
	return Peak{
		Bin:       best,
		Magnitude: ps[best],
		Frequency: bin / span,
		Period:    span / bin,
	}, nil
}

// refine fits a parabola through the log magnitudes around bin i and returns
// the offset of its vertex, within half a bin. The first bin is left alone
// since its lower neighbour is the removed mean.
func refine(ps []float64, i int) float64 {
	if i < 2 || i+1 >= len(ps) || ps[i-1] <= 0 || ps[i+1] <= 0 {
		return 0
	}
	a, b, c := math.Log(ps[i-1]), math.Log(ps[i]), math.Log(ps[i+1])
	den := a - 2*b + c
	if den >= 0 {
		return 0
	}
	return 0.5 * (a - c) / den
}
