package spectrum

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-color/internal/testutil"
)

func TestInterpolateLinearSamplePoints(t *testing.T) {
	x := []float64{500, 550, 600, 650, 700}
	y := []float64{0.1, 0.5, 1.0, 0.5, 0.1}

	got, err := InterpolateLinear(x, y, x)
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	for i := range y {
		if got[i] != y[i] {
			t.Fatalf("got[%d]=%v want=%v", i, got[i], y[i])
		}
	}
}

func TestInterpolateLinearBetweenSamples(t *testing.T) {
	x := []float64{500, 550, 600, 650, 700}
	y := []float64{0.1, 0.5, 1.0, 0.5, 0.1}

	query := []float64{505, 525, 549, 575, 612.5, 699}
	got, err := InterpolateLinear(x, y, query)
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	for i, q := range query {
		j := 1
		for x[j] < q {
			j++
		}
		lo, hi := y[j-1], y[j]
		if lo > hi {
			lo, hi = hi, lo
		}
		if got[i] < lo || got[i] > hi {
			t.Fatalf("query %v: got %v outside [%v, %v]", q, got[i], lo, hi)
		}
	}
	testutil.RequireNearlyEqual(t, "midpoint", got[1], 0.3, 1e-12)
	testutil.RequireNearlyEqual(t, "quarter", got[4], 0.875, 1e-12)
}

func TestInterpolateLinearClampsOutsideRange(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 30}

	got, err := InterpolateLinear(x, y, []float64{-100, 0.999, 3.001, 1e9})
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	want := []float64{10, 10, 30, 30}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestInterpolateLinearDuplicateWavelengths(t *testing.T) {
	x := []float64{1, 2, 2, 3}
	y := []float64{0, 1, 3, 4}

	got, err := InterpolateLinear(x, y, []float64{1.5, 2.5})
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, 3.5}, 1e-12)

	// An exact hit on a repeated wavelength takes the last repeat.
	got, err = InterpolateLinear(x, y, []float64{2})
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	if got[0] != 3 {
		t.Fatalf("got %v at repeated wavelength, want 3", got[0])
	}
}

func TestInterpolateLinearErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "empty", x: nil, y: nil, want: ErrEmpty},
		{name: "mismatch", x: []float64{1, 2}, y: []float64{1}, want: ErrLengthMismatch},
		{name: "unsorted", x: []float64{3, 2, 1}, y: []float64{1, 2, 3}, want: ErrUnsorted},
		{name: "nan last", x: []float64{500, 600, math.NaN()}, y: []float64{1, 2, 3}, want: ErrNonFinite},
		{name: "nan first", x: []float64{math.NaN(), 500, 600}, y: []float64{1, 2, 3}, want: ErrNonFinite},
		{name: "inf", x: []float64{500, math.Inf(1)}, y: []float64{1, 2}, want: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InterpolateLinear(tt.x, tt.y, []float64{1.5})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterpolateLinearSingleSample(t *testing.T) {
	got, err := InterpolateLinear([]float64{550}, []float64{2}, []float64{400, 550, 700})
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 2, 2}, 0)
}

func TestInterpolateLinearRandomSpectrumBounds(t *testing.T) {
	x, y := testutil.RandomSpectrum(42, 200, 360, 830)

	grid := make([]float64, 0, 471)
	for w := 360.0; w <= 830; w++ {
		grid = append(grid, w)
	}
	got, err := InterpolateLinear(x, y, grid)
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}

	for i, q := range grid {
		if q <= x[0] || q >= x[len(x)-1] {
			continue
		}
		j := 1
		for x[j] < q {
			j++
		}
		lo, hi := min(y[j-1], y[j]), max(y[j-1], y[j])
		if got[i] < lo-1e-15 || got[i] > hi+1e-15 {
			t.Fatalf("query %v: got %v outside [%v, %v]", q, got[i], lo, hi)
		}
	}

	roundTrip, err := InterpolateLinear(x, y, x)
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, roundTrip, y, 0)
}

func TestInterpolateLinearNaNQuery(t *testing.T) {
	got, err := InterpolateLinear([]float64{1, 2, 3}, []float64{10, 20, 30}, []float64{math.NaN(), 2.5})
	if err != nil {
		t.Fatalf("InterpolateLinear error: %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Fatalf("got[0] = %v, want NaN", got[0])
	}
	testutil.RequireNearlyEqual(t, "got[1]", got[1], 25, 1e-12)
}

func TestReadValuesNaNWavelengthRejected(t *testing.T) {
	wl, err := ReadValues(strings.NewReader("5000\n6000\nnan\n"))
	if err != nil {
		t.Fatalf("ReadValues error: %v", err)
	}
	d, err := NewDistribution(wl, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewDistribution error: %v", err)
	}
	if _, err := d.Scaled(0.1).Sorted().Resample([]float64{550, 700}); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("err = %v, want ErrNonFinite", err)
	}
}
