package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// DominantFrequency returns the strongest oscillation in the series, in
// Hz given the sample rate. The mean is removed first so the DC bin
// does not mask real oscillation; a series with no oscillation at all
// reports 0.
func DominantFrequency(values []float64, sampleRate float64) float64 {
	if len(values) < 2 || sampleRate <= 0 {
		return 0
	}

	mean := stat.Mean(values, nil)
	centered := make([]float64, len(values))
	for i, v := range values {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)

	n := len(centered)
	best := 0
	bestPower := 0.0
	for i := 1; i <= n/2; i++ {
		if p := cmplx.Abs(coeffs[i]); p > bestPower {
			bestPower = p
			best = i
		}
	}
	if best == 0 {
		return 0
	}
	return float64(best) * sampleRate / float64(n)
}
