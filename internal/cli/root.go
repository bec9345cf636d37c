// Package cli implements the spec2rgb command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-color/pipeline"
)

// RootOptions holds the command line flags.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	Wavelengths     string
	Flux            string
	WavelengthScale float64
	Strict          bool
	SmoothFWHM      float64
	NoGamma         bool
	Clamp           bool
	Range           string
}

// NewRootCommand creates the spec2rgb command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := pipeline.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "spec2rgb",
		Short: "Convert a spectral flux distribution to an sRGB color",
		Long: `Convert a spectral flux distribution to an sRGB color.

Reads wavelengths (Angstrom by default) and flux values, one number per line,
interpolates the flux onto the CIE 1931 2 degree observer grid, integrates to
XYZ and prints the gamma-encoded sRGB triple.

Settings are taken from the defaults, then the --config YAML file, then any
flags given on the command line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log pipeline stages to stderr")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json|hex)")
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.Wavelengths, "wavelengths", def.WavelengthPath, "wavelength file, one value per line")
	flags.StringVar(&opts.Flux, "flux", def.FluxPath, "flux file, one value per line")
	flags.Float64Var(&opts.WavelengthScale, "wavelength-scale", def.WavelengthScale, "factor converting input wavelengths to nm")
	flags.BoolVar(&opts.Strict, "strict", false, "fail on unsorted wavelengths instead of sorting them")
	flags.Float64Var(&opts.SmoothFWHM, "smooth-fwhm", 0, "Gaussian smoothing FWHM in nm (0 disables)")
	flags.BoolVar(&opts.NoGamma, "no-gamma", false, "print linear sRGB without the transfer curve")
	flags.BoolVar(&opts.Clamp, "clamp", false, "clamp channels to [0, 1]")
	flags.StringVar(&opts.Range, "range", def.OutputRange.String(), "output range (unit|255)")

	return cmd
}

// buildConfig layers defaults, the config file and explicitly set flags.
func buildConfig(cmd *cobra.Command, opts *RootOptions) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()

	if opts.ConfigPath != "" {
		fc, err := LoadConfigFile(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		if err := fc.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", opts.ConfigPath, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("wavelengths") {
		cfg.WavelengthPath = opts.Wavelengths
	}
	if flags.Changed("flux") {
		cfg.FluxPath = opts.Flux
	}
	if flags.Changed("wavelength-scale") {
		cfg.WavelengthScale = opts.WavelengthScale
	}
	if flags.Changed("strict") {
		cfg.Order = pipeline.OrderSort
		if opts.Strict {
			cfg.Order = pipeline.OrderStrict
		}
	}
	if flags.Changed("smooth-fwhm") {
		cfg.SmoothFWHM = opts.SmoothFWHM
	}
	if flags.Changed("no-gamma") {
		cfg.Gamma = !opts.NoGamma
	}
	if flags.Changed("clamp") {
		cfg.Clamp = opts.Clamp
	}
	if flags.Changed("range") {
		r, err := pipeline.ParseRange(opts.Range)
		if err != nil {
			return cfg, err
		}
		cfg.OutputRange = r
	}

	return cfg, cfg.Validate()
}

func runConvert(cmd *cobra.Command, opts *RootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		"wavelengths", cfg.WavelengthPath,
		"flux", cfg.FluxPath,
		"wavelength_scale", cfg.WavelengthScale,
		"order", cfg.Order.String(),
		"smooth_fwhm", cfg.SmoothFWHM,
		"gamma", cfg.Gamma,
		"clamp", cfg.Clamp,
		"range", cfg.OutputRange.String())

	start := time.Now()
	res, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}

	if !res.Input.IsSorted() {
		logger.Warn("Input wavelengths were not ascending; samples sorted before interpolation")
	}
	x, y := res.XYZ.Chromaticity()
	logger.Debug("Conversion complete",
		"samples", res.Input.Len(),
		"grid_points", res.Resampled.Len(),
		"X", res.XYZ.X, "Y", res.XYZ.Y, "Z", res.XYZ.Z,
		"x", x, "y", y,
		"in_gamut", res.Linear.InGamut(),
		"duration", time.Since(start))

	return writeResult(cmd.OutOrStdout(), opts.Format, res)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
