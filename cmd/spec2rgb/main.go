// Command spec2rgb converts a spectral flux distribution into an sRGB color.
//
// Usage:
//
//	spec2rgb [flags]
//
// Without flags it reads wavelengths.txt (Angstrom) and sbc_flux.txt from the
// working directory and prints the gamma-encoded triple.
//
// Examples:
//
//	spec2rgb
//	spec2rgb --wavelengths wl.txt --flux flux.txt --range 255
//	spec2rgb --config star.yaml --format json
//	spec2rgb --smooth-fwhm 10 --format hex
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-color/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
