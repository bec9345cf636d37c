package pipeline

import (
	"fmt"
	"math"
	"strings"
)

// Default input file names, relative to the working directory.
const (
	DefaultWavelengthPath = "wavelengths.txt"
	DefaultFluxPath       = "sbc_flux.txt"

	// AngstromToNanometer converts Angstrom input to the nm observer grid.
	AngstromToNanometer = 0.1
)

// OrderPolicy decides what happens when input wavelengths are not ascending.
type OrderPolicy int

const (
	// OrderSort sorts samples by wavelength before interpolation.
	OrderSort OrderPolicy = iota
	// OrderStrict rejects unsorted input with spectrum.ErrUnsorted.
	OrderStrict
)

// String implements fmt.Stringer.
func (p OrderPolicy) String() string {
	switch p {
	case OrderSort:
		return "sort"
	case OrderStrict:
		return "strict"
	default:
		return fmt.Sprintf("OrderPolicy(%d)", int(p))
	}
}

// ParseOrder parses "sort" and "strict".
func ParseOrder(s string) (OrderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sort", "":
		return OrderSort, nil
	case "strict":
		return OrderStrict, nil
	default:
		return OrderSort, fmt.Errorf("%w: unknown order policy %q (want sort or strict)", ErrInvalidConfig, s)
	}
}

// Range is the numeric range of the final RGB output.
type Range int

const (
	// RangeUnit leaves channels on the nominal [0, 1] scale.
	RangeUnit Range = iota
	// Range255 additionally rounds channels to 0-255 integers.
	Range255
)

// String implements fmt.Stringer.
func (r Range) String() string {
	switch r {
	case RangeUnit:
		return "unit"
	case Range255:
		return "255"
	default:
		return fmt.Sprintf("Range(%d)", int(r))
	}
}

// ParseRange parses "unit" (or "1") and "255".
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unit", "1", "":
		return RangeUnit, nil
	case "255":
		return Range255, nil
	default:
		return RangeUnit, fmt.Errorf("%w: unknown output range %q (want unit or 255)", ErrInvalidConfig, s)
	}
}

// Config holds every parameter of a conversion run.
type Config struct {
	WavelengthPath string
	FluxPath       string

	// WavelengthScale multiplies input wavelengths to get nanometers.
	WavelengthScale float64
	Order           OrderPolicy

	// SmoothFWHM is the Gaussian broadening width in nm. Zero disables it.
	SmoothFWHM float64

	Gamma       bool
	Clamp       bool
	OutputRange Range
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of the classic
// wavelengths.txt/sbc_flux.txt conversion.
func DefaultConfig() Config {
	return Config{
		WavelengthPath:  DefaultWavelengthPath,
		FluxPath:        DefaultFluxPath,
		WavelengthScale: AngstromToNanometer,
		Order:           OrderSort,
		Gamma:           true,
		OutputRange:     RangeUnit,
	}
}

// WithInputs sets the wavelength and flux file paths. Empty paths are ignored.
func WithInputs(wavelengthPath, fluxPath string) Option {
	return func(cfg *Config) {
		if wavelengthPath != "" {
			cfg.WavelengthPath = wavelengthPath
		}
		if fluxPath != "" {
			cfg.FluxPath = fluxPath
		}
	}
}

// WithWavelengthScale sets the unit conversion factor to nanometers.
func WithWavelengthScale(scale float64) Option {
	return func(cfg *Config) {
		if scale > 0 && !math.IsInf(scale, 0) {
			cfg.WavelengthScale = scale
		}
	}
}

// WithOrder sets the unsorted-input policy.
func WithOrder(policy OrderPolicy) Option {
	return func(cfg *Config) {
		cfg.Order = policy
	}
}

// WithSmoothing enables Gaussian broadening with the given FWHM in nm.
func WithSmoothing(fwhm float64) Option {
	return func(cfg *Config) {
		if fwhm >= 0 && !math.IsInf(fwhm, 0) {
			cfg.SmoothFWHM = fwhm
		}
	}
}

// WithGamma turns the sRGB transfer curve on or off.
func WithGamma(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Gamma = enabled
	}
}

// WithClamp turns clamping of the final channels to [0, 1] on or off.
func WithClamp(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Clamp = enabled
	}
}

// WithOutputRange selects the output range.
func WithOutputRange(r Range) Option {
	return func(cfg *Config) {
		cfg.OutputRange = r
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports configuration errors that options cannot catch, such as
// a hand-built Config with a zero scale.
func (cfg Config) Validate() error {
	if cfg.WavelengthPath == "" || cfg.FluxPath == "" {
		return fmt.Errorf("%w: input paths must be set", ErrInvalidConfig)
	}
	return cfg.validateProcessing()
}

func (cfg Config) validateProcessing() error {
	if !(cfg.WavelengthScale > 0) || math.IsInf(cfg.WavelengthScale, 0) {
		return fmt.Errorf("%w: wavelength scale must be > 0: %g", ErrInvalidConfig, cfg.WavelengthScale)
	}
	if cfg.SmoothFWHM < 0 || math.IsNaN(cfg.SmoothFWHM) || math.IsInf(cfg.SmoothFWHM, 0) {
		return fmt.Errorf("%w: smoothing FWHM must be >= 0: %g", ErrInvalidConfig, cfg.SmoothFWHM)
	}
	if cfg.Order != OrderSort && cfg.Order != OrderStrict {
		return fmt.Errorf("%w: unknown order policy %v", ErrInvalidConfig, cfg.Order)
	}
	if cfg.OutputRange != RangeUnit && cfg.OutputRange != Range255 {
		return fmt.Errorf("%w: unknown output range %v", ErrInvalidConfig, cfg.OutputRange)
	}
	return nil
}
