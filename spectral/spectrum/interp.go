package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be finite, non-decreasing and have the same length as y. Queries at
// or below x[0] return y[0], queries at or above the last sample return the
// last value. A query that hits a sample exactly returns that sample's value;
// for repeated wavelengths the last repeat wins. NaN queries yield NaN.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmpty
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if err := CheckFinite(x); err != nil {
		return nil, err
	}
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return nil, fmt.Errorf("%w: index %d (%g < %g)", ErrUnsorted, i, x[i], x[i-1])
		}
	}

	out := make([]float64, len(queryX))
	last := len(x) - 1
	for i, q := range queryX {
		switch {
		case math.IsNaN(q):
			out[i] = math.NaN()
			continue
		case q < x[0]:
			out[i] = y[0]
			continue
		case q >= x[last]:
			out[i] = y[last]
			continue
		}

		// x[j-1] <= q < x[j], 1 <= j <= last
		j := sort.Search(len(x), func(k int) bool { return x[k] > q })
		if x[j-1] == q {
			out[i] = y[j-1]
			continue
		}
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out, nil
}

// CheckFinite returns ErrNonFinite if any wavelength is NaN or infinite.
func CheckFinite(wavelengths []float64) error {
	for i, v := range wavelengths {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: wavelength at index %d is %g", ErrNonFinite, i, v)
		}
	}
	return nil
}
