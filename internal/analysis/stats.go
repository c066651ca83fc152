package analysis

import "math"

type Summary struct {
	Min, Max  float64
	Mean, Std float64
	N         int
}

func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	s := Summary{Min: data[0], Max: data[0], N: len(data)}
	sum := 0.0
	for _, v := range data {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(data))

	ss := 0.0
	for _, v := range data {
		ss += (v - s.Mean) * (v - s.Mean)
	}
	s.Std = math.Sqrt(ss / float64(len(data)))
	return s
}

// FitRate returns the least-squares slope of ys over xs. With the tick column
// as xs and a rotation column as ys it recovers the spin per tick.
func FitRate(xs, ys []float64) (float64, error) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return 0, ErrTooShort
	}
	mx, my := Summarize(xs[:n]).Mean, Summarize(ys[:n]).Mean
	num, den := 0.0, 0.0
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		num += dx * (ys[i] - my)
		den += dx * dx
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}
