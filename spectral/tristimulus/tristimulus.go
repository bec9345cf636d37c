// Package tristimulus integrates spectral distributions against standard
// observer color-matching functions to CIE XYZ.
//
// Integration uses the rectangle rule on the observer grid with an
// equal-energy illuminant and the usual emissive normalization
//
//	k = 100 / Σ ȳ(λ)Δλ
//
// so a flat spectrum of ones integrates to Y = 100.
package tristimulus

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-color/spectral/cmf"
	"github.com/cwbudde/algo-color/spectral/spectrum"
)

// Errors returned by tristimulus functions.
var (
	ErrGridMismatch  = errors.New("tristimulus: values do not match observer grid")
	ErrEmptyObserver = errors.New("tristimulus: observer has no samples")
)

// XYZ is a CIE tristimulus value, Y on a 0-100 scale.
type XYZ struct {
	X, Y, Z float64
}

// Scale returns xyz multiplied by k.
func (xyz XYZ) Scale(k float64) XYZ {
	return XYZ{X: xyz.X * k, Y: xyz.Y * k, Z: xyz.Z * k}
}

// Chromaticity returns the CIE xy chromaticity coordinates. A black value
// returns (0, 0).
func (xyz XYZ) Chromaticity() (x, y float64) {
	sum := xyz.X + xyz.Y + xyz.Z
	if sum == 0 {
		return 0, 0
	}
	return xyz.X / sum, xyz.Y / sum
}

// Integrate computes XYZ for values sampled on the observer grid.
func Integrate(values []float64, obs cmf.Observer) (XYZ, error) {
	n := obs.Len()
	if n == 0 {
		return XYZ{}, ErrEmptyObserver
	}
	if len(values) != n {
		return XYZ{}, fmt.Errorf("%w: %d values, %d grid points", ErrGridMismatch, len(values), n)
	}

	dw := obs.Interval()
	if dw == 0 {
		dw = 1
	}

	norm := sum(obs.YBar) * dw
	if norm == 0 {
		return XYZ{}, fmt.Errorf("%w: ȳ integrates to zero", ErrEmptyObserver)
	}
	k := 100 / norm

	weighted := make([]float64, n)
	integrate := func(bar []float64) float64 {
		vecmath.MulBlock(weighted, values, bar)
		return k * sum(weighted) * dw
	}

	return XYZ{
		X: integrate(obs.XBar),
		Y: integrate(obs.YBar),
		Z: integrate(obs.ZBar),
	}, nil
}

// FromDistribution resamples d onto the observer grid and integrates it.
func FromDistribution(d spectrum.Distribution, obs cmf.Observer) (XYZ, error) {
	resampled, err := d.Resample(obs.Wavelengths)
	if err != nil {
		return XYZ{}, err
	}
	return Integrate(resampled.Values, obs)
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}
