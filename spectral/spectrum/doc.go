// Package spectrum provides sampled spectral distributions and the helpers
// needed to bring them onto a colorimetric wavelength grid.
//
// A [Distribution] pairs wavelengths with per-wavelength values (flux,
// radiance, reflectance). Values are read from plain text files holding one
// floating-point literal per line with [ReadFile] or [LoadDistribution],
// converted between wavelength units with [Distribution.Scaled], and
// resampled with [InterpolateLinear] or [Distribution.Resample].
//
// Interpolation follows the usual clamped edge policy: queries outside the
// sampled range return the nearest boundary value.
//
// [GaussianSmooth] applies an optional FFT-based Gaussian broadening to values
// on a uniform grid.
package spectrum
