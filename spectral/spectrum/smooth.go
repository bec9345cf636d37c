package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FWHMToSigma converts a Gaussian full width at half maximum to its
// standard deviation.
func FWHMToSigma(fwhm float64) float64 {
	return fwhm / (2 * math.Sqrt(2*math.Ln2))
}

// GaussianKernel returns a unit-area Gaussian kernel truncated at 4 sigma.
// sigma is in samples. The kernel has odd length and is centered.
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	half := int(math.Ceil(4 * sigma))
	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i-half) / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianSmooth convolves values with a Gaussian of the given sigma (in
// samples) and returns a slice of the same length. Edges are extended with
// the boundary values, so a constant input stays constant.
//
// values must be on a uniform grid. sigma == 0 returns a copy.
func GaussianSmooth(values []float64, sigma float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}
	if sigma == 0 {
		return append([]float64(nil), values...), nil
	}

	kernel := GaussianKernel(sigma)
	half := len(kernel) / 2
	n := len(values)

	// Padded signal: half edge samples on either side.
	paddedLen := n + 2*half
	fftSize := nextPowerOf2(paddedLen + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	signal := make([]complex128, fftSize)
	for i := 0; i < paddedLen; i++ {
		src := i - half
		switch {
		case src < 0:
			src = 0
		case src >= n:
			src = n - 1
		}
		signal[i] = complex(values[src], 0)
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	signalFFT := make([]complex128, fftSize)
	if err := plan.Forward(signalFFT, signal); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	kernelFFT := make([]complex128, fftSize)
	if err := plan.Forward(kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("spectrum: kernel FFT failed: %w", err)
	}

	for i := range signalFFT {
		signalFFT[i] *= kernelFFT[i]
	}

	full := make([]complex128, fftSize)
	if err := plan.Inverse(full, signalFFT); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	// Sample i sits at padded index i+half; the centered kernel adds another half.
	out := make([]float64, n)
	for i := range out {
		out[i] = real(full[i+2*half])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
