// Package cmf holds standard observer color-matching functions.
package cmf

// Observer is a tabulated set of color-matching functions x̄, ȳ, z̄ sampled
// on a common wavelength grid in nanometers.
type Observer struct {
	Name        string
	Wavelengths []float64
	XBar        []float64
	YBar        []float64
	ZBar        []float64
}

// Len returns the number of grid points.
func (o Observer) Len() int { return len(o.Wavelengths) }

// Interval returns the spacing of the grid in nanometers, or 0 for grids
// with fewer than two points. Tables in this package are uniform.
func (o Observer) Interval() float64 {
	if len(o.Wavelengths) < 2 {
		return 0
	}
	return o.Wavelengths[1] - o.Wavelengths[0]
}

// At returns the wavelength and x̄, ȳ, z̄ at index i.
func (o Observer) At(i int) (wavelength, x, y, z float64) {
	return o.Wavelengths[i], o.XBar[i], o.YBar[i], o.ZBar[i]
}

// CIE1931TwoDegree returns the CIE 1931 2° standard observer from 360 nm to
// 830 nm in 5 nm steps. Every call returns fresh slices.
func CIE1931TwoDegree() Observer {
	n := len(cie1931TwoDegree)
	o := Observer{
		Name:        "CIE 1931 2 Degree Standard Observer",
		Wavelengths: make([]float64, n),
		XBar:        make([]float64, n),
		YBar:        make([]float64, n),
		ZBar:        make([]float64, n),
	}
	for i, row := range cie1931TwoDegree {
		o.Wavelengths[i] = row[0]
		o.XBar[i] = row[1]
		o.YBar[i] = row[2]
		o.ZBar[i] = row[3]
	}
	return o
}
