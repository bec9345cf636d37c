package spectrum

import (
	"sort"
)

// Distribution is a sampled spectral distribution. Wavelengths[i] is paired
// with Values[i]. The zero value is an empty distribution.
type Distribution struct {
	Wavelengths []float64
	Values      []float64
}

// NewDistribution pairs wl with values. Both slices are copied.
func NewDistribution(wl, values []float64) (Distribution, error) {
	if len(wl) == 0 || len(values) == 0 {
		return Distribution{}, ErrEmpty
	}
	if len(wl) != len(values) {
		return Distribution{}, ErrLengthMismatch
	}
	return Distribution{
		Wavelengths: append([]float64(nil), wl...),
		Values:      append([]float64(nil), values...),
	}, nil
}

// Len returns the number of samples.
func (d Distribution) Len() int { return len(d.Wavelengths) }

// Scaled returns a copy with every wavelength multiplied by factor.
// Use 0.1 to go from Angstrom to nanometers. Sample order is kept as is.
func (d Distribution) Scaled(factor float64) Distribution {
	out := Distribution{
		Wavelengths: make([]float64, len(d.Wavelengths)),
		Values:      append([]float64(nil), d.Values...),
	}
	for i, w := range d.Wavelengths {
		out.Wavelengths[i] = w * factor
	}
	return out
}

// ScaleValues returns a copy with every value multiplied by k.
func (d Distribution) ScaleValues(k float64) Distribution {
	out := Distribution{
		Wavelengths: append([]float64(nil), d.Wavelengths...),
		Values:      make([]float64, len(d.Values)),
	}
	for i, v := range d.Values {
		out.Values[i] = v * k
	}
	return out
}

// IsSorted reports whether wavelengths are non-decreasing.
func (d Distribution) IsSorted() bool {
	return sort.Float64sAreSorted(d.Wavelengths)
}

// Sorted returns a copy whose samples are ordered by ascending wavelength.
// Samples with equal wavelengths keep their relative order.
func (d Distribution) Sorted() Distribution {
	out := Distribution{
		Wavelengths: append([]float64(nil), d.Wavelengths...),
		Values:      append([]float64(nil), d.Values...),
	}
	sort.Stable(byWavelength(out))
	return out
}

// Resample interpolates d onto grid. See [InterpolateLinear].
func (d Distribution) Resample(grid []float64) (Distribution, error) {
	values, err := InterpolateLinear(d.Wavelengths, d.Values, grid)
	if err != nil {
		return Distribution{}, err
	}
	return Distribution{
		Wavelengths: append([]float64(nil), grid...),
		Values:      values,
	}, nil
}

type byWavelength Distribution

func (b byWavelength) Len() int           { return len(b.Wavelengths) }
func (b byWavelength) Less(i, j int) bool { return b.Wavelengths[i] < b.Wavelengths[j] }
func (b byWavelength) Swap(i, j int) {
	b.Wavelengths[i], b.Wavelengths[j] = b.Wavelengths[j], b.Wavelengths[i]
	b.Values[i], b.Values[j] = b.Values[j], b.Values[i]
}
