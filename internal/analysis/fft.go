package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Bin is one frequency bin of a power spectrum.
type Bin struct {
	Freq  float64
	Power float64
}

// Spectrum returns the one-sided power spectrum of series sampled every dt
// time units. The mean is removed first so bin 0 carries no offset.
func Spectrum(series []float64, dt float64) []Bin {
	n := len(series)
	if n < 2 || dt <= 0 {
		return nil
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	centred := make([]float64, n)
	for i, v := range series {
		centred[i] = v - mean
	}

	coeffs := fft.FFTReal(centred)
	bins := make([]Bin, n/2+1)
	for k := range bins {
		a := cmplx.Abs(coeffs[k])
		bins[k] = Bin{Freq: float64(k) / (float64(n) * dt), Power: a * a / float64(n)}
	}
	return bins
}

// Dominant returns the strongest bin above zero frequency.
func Dominant(bins []Bin) (Bin, bool) {
	if len(bins) < 2 {
		return Bin{}, false
	}
	best := bins[1]
	for _, b := range bins[2:] {
		if b.Power > best.Power {
			best = b
		}
	}
	return best, true
}

// Powers extracts the power column, for plotting.
func Powers(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Power
	}
	return out
}
