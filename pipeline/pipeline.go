// Package pipeline turns a sampled spectral flux distribution into an sRGB
// color.
//
// The stages run in order, each feeding the next:
//
//  1. ingest: read wavelength and flux files ([spectrum.LoadDistribution])
//  2. resample: convert units, order samples and interpolate onto the
//     CIE 1931 2° grid, optionally Gaussian-smoothed
//  3. integrate: XYZ against the standard observer ([tristimulus.Integrate])
//  4. convert: XYZ to linear sRGB, transfer curve, optional clamp and
//     0-255 scaling
//
// Every knob lives in [Config]; nothing is read from the environment.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-color/color/srgb"
	"github.com/cwbudde/algo-color/spectral/cmf"
	"github.com/cwbudde/algo-color/spectral/spectrum"
	"github.com/cwbudde/algo-color/spectral/tristimulus"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Result holds the output of every stage of a run.
type Result struct {
	// Input is the distribution as read, before unit conversion.
	Input spectrum.Distribution
	// Resampled is the flux on the observer grid in nm.
	Resampled spectrum.Distribution
	XYZ       tristimulus.XYZ
	Linear    srgb.RGB
	// RGB is the final color after the transfer curve and clamping.
	RGB srgb.RGB
	// Scaled is RGB on 0-255, only set for Range255.
	Scaled *[3]int
}

// Run reads the configured input files and converts them.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	d, err := spectrum.LoadDistribution(cfg.WavelengthPath, cfg.FluxPath)
	if err != nil {
		return Result{}, err
	}
	return Process(d, cfg)
}

// Process converts an in-memory distribution whose wavelengths are in the
// input unit described by cfg.WavelengthScale. Input paths are not used.
func Process(d spectrum.Distribution, cfg Config) (Result, error) {
	if err := cfg.validateProcessing(); err != nil {
		return Result{}, err
	}
	if d.Len() == 0 || len(d.Values) == 0 {
		return Result{}, fmt.Errorf("pipeline: %w", spectrum.ErrEmpty)
	}
	if len(d.Values) != d.Len() {
		return Result{}, fmt.Errorf("pipeline: %w", spectrum.ErrLengthMismatch)
	}

	obs := cmf.CIE1931TwoDegree()

	resampled, err := Resample(d, obs, cfg)
	if err != nil {
		return Result{}, err
	}

	xyz, err := tristimulus.Integrate(resampled.Values, obs)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Input:     d,
		Resampled: resampled,
		XYZ:       xyz,
	}
	res.Linear, res.RGB = Convert(xyz, cfg)
	if cfg.OutputRange == Range255 {
		scaled := res.RGB.Scale255()
		res.Scaled = &scaled
	}
	return res, nil
}

// Resample converts d to nanometers, applies the order policy, interpolates
// onto the observer grid and applies optional smoothing.
func Resample(d spectrum.Distribution, obs cmf.Observer, cfg Config) (spectrum.Distribution, error) {
	nm := d.Scaled(cfg.WavelengthScale)
	if err := spectrum.CheckFinite(nm.Wavelengths); err != nil {
		return spectrum.Distribution{}, fmt.Errorf("pipeline: %w", err)
	}
	if !nm.IsSorted() {
		if cfg.Order == OrderStrict {
			return spectrum.Distribution{}, fmt.Errorf("pipeline: %w", spectrum.ErrUnsorted)
		}
		nm = nm.Sorted()
	}

	resampled, err := nm.Resample(obs.Wavelengths)
	if err != nil {
		return spectrum.Distribution{}, err
	}

	if cfg.SmoothFWHM > 0 {
		interval := obs.Interval()
		if interval <= 0 {
			interval = 1
		}
		sigma := spectrum.FWHMToSigma(cfg.SmoothFWHM) / interval
		smoothed, err := spectrum.GaussianSmooth(resampled.Values, sigma)
		if err != nil {
			return spectrum.Distribution{}, err
		}
		resampled.Values = smoothed
	}
	return resampled, nil
}

// Convert maps XYZ to linear sRGB and to the final output color.
func Convert(xyz tristimulus.XYZ, cfg Config) (linear, out srgb.RGB) {
	linear = srgb.FromXYZ(xyz)
	out = linear
	if cfg.Gamma {
		out = out.Encode()
	}
	if cfg.Clamp {
		out = out.Clamped()
	}
	return linear, out
}
