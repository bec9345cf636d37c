package tristimulus

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-color/internal/testutil"
	"github.com/cwbudde/algo-color/spectral/cmf"
	"github.com/cwbudde/algo-color/spectral/spectrum"
)

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestIntegrateZero(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()

	xyz, err := Integrate(make([]float64, obs.Len()), obs)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if xyz != (XYZ{}) {
		t.Fatalf("XYZ = %+v, want zero", xyz)
	}
	x, y := xyz.Chromaticity()
	if x != 0 || y != 0 {
		t.Fatalf("Chromaticity() = (%v, %v), want (0, 0)", x, y)
	}
}

func TestIntegrateEqualEnergy(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()

	xyz, err := Integrate(constant(obs.Len(), 1), obs)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	testutil.RequireNearlyEqual(t, "Y", xyz.Y, 100, 1e-9)
	testutil.RequireNearlyEqual(t, "X", xyz.X, 100, 1)
	testutil.RequireNearlyEqual(t, "Z", xyz.Z, 100, 1)

	x, y := xyz.Chromaticity()
	testutil.RequireNearlyEqual(t, "x", x, 1.0/3, 1e-3)
	testutil.RequireNearlyEqual(t, "y", y, 1.0/3, 1e-3)
}

func TestIntegrateScaleInvariantChromaticity(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()
	values := make([]float64, obs.Len())
	for i, wl := range obs.Wavelengths {
		values[i] = 1 + (wl-360)/100
	}

	base, err := Integrate(values, obs)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = 3.5 * v
	}
	got, err := Integrate(scaled, obs)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}

	want := base.Scale(3.5)
	testutil.RequireNearlyEqual(t, "X", got.X, want.X, 1e-9)
	testutil.RequireNearlyEqual(t, "Y", got.Y, want.Y, 1e-9)
	testutil.RequireNearlyEqual(t, "Z", got.Z, want.Z, 1e-9)

	bx, by := base.Chromaticity()
	gx, gy := got.Chromaticity()
	testutil.RequireNearlyEqual(t, "x", gx, bx, 1e-12)
	testutil.RequireNearlyEqual(t, "y", gy, by, 1e-12)
}

func TestIntegrateGridMismatch(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()
	if _, err := Integrate([]float64{1, 2, 3}, obs); !errors.Is(err, ErrGridMismatch) {
		t.Fatalf("err = %v, want ErrGridMismatch", err)
	}
	if _, err := Integrate(nil, cmf.Observer{}); !errors.Is(err, ErrEmptyObserver) {
		t.Fatalf("err = %v, want ErrEmptyObserver", err)
	}
}

func TestFromDistributionMonochromatic(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()

	// A narrow line at 555 nm only excites the ȳ peak region.
	d, err := spectrum.NewDistribution(
		[]float64{360, 550, 555, 560, 830},
		[]float64{0, 0, 1, 0, 0},
	)
	if err != nil {
		t.Fatalf("NewDistribution error: %v", err)
	}
	xyz, err := FromDistribution(d, obs)
	if err != nil {
		t.Fatalf("FromDistribution error: %v", err)
	}
	if xyz.Y <= xyz.X || xyz.Y <= xyz.Z {
		t.Fatalf("XYZ = %+v, want Y dominant", xyz)
	}
}

func TestFromDistributionUnsorted(t *testing.T) {
	d, _ := spectrum.NewDistribution([]float64{700, 500}, []float64{1, 1})
	if _, err := FromDistribution(d, cmf.CIE1931TwoDegree()); !errors.Is(err, spectrum.ErrUnsorted) {
		t.Fatalf("err = %v, want ErrUnsorted", err)
	}
}

func TestFromDistributionEmissionLines(t *testing.T) {
	obs := cmf.CIE1931TwoDegree()

	tests := []struct {
		name   string
		center float64
		check  func(XYZ) bool
	}{
		{name: "blue", center: 450, check: func(c XYZ) bool { return c.Z > c.X && c.Z > c.Y }},
		{name: "green", center: 530, check: func(c XYZ) bool { return c.Y > c.X && c.Y > c.Z }},
		{name: "red", center: 610, check: func(c XYZ) bool { return c.X > c.Y && c.Y > c.Z }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := testutil.GaussianLine(obs.Wavelengths, tt.center, 8, 1)
			d, err := spectrum.NewDistribution(obs.Wavelengths, line)
			if err != nil {
				t.Fatalf("NewDistribution error: %v", err)
			}
			xyz, err := FromDistribution(d, obs)
			if err != nil {
				t.Fatalf("FromDistribution error: %v", err)
			}
			if !tt.check(xyz) {
				t.Fatalf("XYZ = %+v for line at %v nm", xyz, tt.center)
			}
		})
	}
}
