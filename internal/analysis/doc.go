// Package analysis summarises recorded viewer samples.
//
//   - [PowerSpectrum], [DominantPeriod]: periodicity of a sample column via FFT
//   - [Summarize]: min, max, mean and spread of a column
//   - [FitRate]: least-squares rate of change per tick, e.g. the spin
//   - [Portrait]: two columns plotted against each other
//
// The atoms ride a rigid rotation, so every coordinate column repeats with
// the rotation period:
//
//	period, err := analysis.DominantPeriod(h1y, ticksPerSample)
package analysis
