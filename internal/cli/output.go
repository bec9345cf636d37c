package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwbudde/algo-color/pipeline"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "hex"}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// jsonResult is the machine-readable output of a run.
type jsonResult struct {
	XYZ          [3]float64 `json:"xyz"`
	Chromaticity [2]float64 `json:"xy"`
	Linear       [3]float64 `json:"linear_rgb"`
	RGB          [3]float64 `json:"rgb"`
	RGB255       *[3]int    `json:"rgb255,omitempty"`
	Hex          string     `json:"hex"`
	InGamut      bool       `json:"in_gamut"`
}

// writeResult prints res in the given format. The text format matches the
// classic "[r g b]" print, or integer channels for the 0-255 range.
func writeResult(w io.Writer, format string, res pipeline.Result) error {
	switch format {
	case "json":
		x, y := res.XYZ.Chromaticity()
		out := jsonResult{
			XYZ:          [3]float64{res.XYZ.X, res.XYZ.Y, res.XYZ.Z},
			Chromaticity: [2]float64{x, y},
			Linear:       [3]float64{res.Linear.R, res.Linear.G, res.Linear.B},
			RGB:          [3]float64{res.RGB.R, res.RGB.G, res.RGB.B},
			RGB255:       res.Scaled,
			Hex:          res.RGB.Hex(),
			InGamut:      res.Linear.InGamut(),
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "hex":
		_, err := fmt.Fprintln(w, res.RGB.Hex())
		return err
	default:
		if res.Scaled != nil {
			_, err := fmt.Fprintf(w, "[%d %d %d]\n", res.Scaled[0], res.Scaled[1], res.Scaled[2])
			return err
		}
		_, err := fmt.Fprintln(w, res.RGB.String())
		return err
	}
}
