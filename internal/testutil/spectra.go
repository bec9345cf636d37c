package testutil

import (
	"math"
	"math/rand"
)

// RandomSpectrum returns n strictly increasing wavelengths in [lo, hi] and
// non-negative flux values, both drawn from a fixed seed.
func RandomSpectrum(seed int64, n int, lo, hi float64) (wavelengths, flux []float64) {
	rng := rand.New(rand.NewSource(seed))
	wavelengths = make([]float64, n)
	flux = make([]float64, n)
	step := (hi - lo) / float64(n)
	for i := range wavelengths {
		wavelengths[i] = lo + step*(float64(i)+0.1+0.8*rng.Float64())
		flux[i] = rng.Float64()
	}
	return wavelengths, flux
}

// GaussianLine returns a Gaussian emission line sampled at wavelengths.
func GaussianLine(wavelengths []float64, center, sigma, peak float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		d := (w - center) / sigma
		out[i] = peak * math.Exp(-0.5*d*d)
	}
	return out
}
