package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-color/pipeline"
)

// FileConfig is the YAML configuration file layout. Unset fields keep the
// pipeline defaults.
//
//	wavelengths: data/wavelengths.txt
//	flux: data/sbc_flux.txt
//	wavelength_scale: 0.1
//	order: strict
//	smooth_fwhm: 2.5
//	gamma: true
//	clamp: false
//	range: "255"
type FileConfig struct {
	Wavelengths     string   `yaml:"wavelengths"`
	Flux            string   `yaml:"flux"`
	WavelengthScale *float64 `yaml:"wavelength_scale"`
	Order           string   `yaml:"order"`
	SmoothFWHM      *float64 `yaml:"smooth_fwhm"`
	Gamma           *bool    `yaml:"gamma"`
	Clamp           *bool    `yaml:"clamp"`
	Range           string   `yaml:"range"`

	// dir is the directory of the file; relative input paths resolve against it.
	dir string
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fc, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	fc.dir = filepath.Dir(path)
	return fc, nil
}

// ParseConfig parses YAML configuration bytes. Relative input paths stay
// relative to the working directory.
func ParseConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &fc, nil
}

// Apply overlays the file settings onto cfg.
func (fc *FileConfig) Apply(cfg *pipeline.Config) error {
	opts := []pipeline.Option{
		pipeline.WithInputs(fc.resolve(fc.Wavelengths), fc.resolve(fc.Flux)),
	}
	if fc.WavelengthScale != nil {
		if !(*fc.WavelengthScale > 0) {
			return fmt.Errorf("%w: wavelength_scale must be > 0: %g", pipeline.ErrInvalidConfig, *fc.WavelengthScale)
		}
		opts = append(opts, pipeline.WithWavelengthScale(*fc.WavelengthScale))
	}
	if fc.Order != "" {
		order, err := pipeline.ParseOrder(fc.Order)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithOrder(order))
	}
	if fc.SmoothFWHM != nil {
		if *fc.SmoothFWHM < 0 {
			return fmt.Errorf("%w: smooth_fwhm must be >= 0: %g", pipeline.ErrInvalidConfig, *fc.SmoothFWHM)
		}
		opts = append(opts, pipeline.WithSmoothing(*fc.SmoothFWHM))
	}
	if fc.Gamma != nil {
		opts = append(opts, pipeline.WithGamma(*fc.Gamma))
	}
	if fc.Clamp != nil {
		opts = append(opts, pipeline.WithClamp(*fc.Clamp))
	}
	if fc.Range != "" {
		r, err := pipeline.ParseRange(fc.Range)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithOutputRange(r))
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return nil
}

func (fc *FileConfig) resolve(path string) string {
	if path == "" || fc.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fc.dir, path)
}
