// Package srgb converts CIE XYZ to IEC 61966-2-1 sRGB.
//
// [FromXYZ] produces linear RGB; [Encode] applies the sRGB transfer curve.
// Nothing is clamped unless [RGB.Clamped] is called, so out-of-gamut colors
// show up as components below 0 or above 1.
package srgb

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-color/spectral/tristimulus"
)

// xyzToLinear is the D65 XYZ to linear sRGB matrix.
var xyzToLinear = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// RGB is an sRGB triple, nominally in [0, 1]. Whether it is linear or
// encoded depends on where it came from.
type RGB struct {
	R, G, B float64
}

// FromXYZ converts XYZ with Y on a 0-100 scale to linear sRGB.
func FromXYZ(xyz tristimulus.XYZ) RGB {
	x, y, z := xyz.X/100, xyz.Y/100, xyz.Z/100
	m := &xyzToLinear
	return RGB{
		R: m[0][0]*x + m[0][1]*y + m[0][2]*z,
		G: m[1][0]*x + m[1][1]*y + m[1][2]*z,
		B: m[2][0]*x + m[2][1]*y + m[2][2]*z,
	}
}

// Encode applies the sRGB transfer function to a linear component.
// Values at or below 0.0031308, negatives included, use the linear segment.
func Encode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// Decode is the inverse of [Encode].
func Decode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Encode applies [Encode] to each channel.
func (c RGB) Encode() RGB {
	return RGB{R: Encode(c.R), G: Encode(c.G), B: Encode(c.B)}
}

// Decode applies [Decode] to each channel.
func (c RGB) Decode() RGB {
	return RGB{R: Decode(c.R), G: Decode(c.G), B: Decode(c.B)}
}

// Clamped limits each channel to [0, 1].
func (c RGB) Clamped() RGB {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	return RGB{R: cc.R, G: cc.G, B: cc.B}
}

// InGamut reports whether every channel lies in [0, 1].
func (c RGB) InGamut() bool {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.IsValid()
}

// Scale255 maps each channel to 0-255 with round-half-to-even. Channels are
// not clamped, so out-of-gamut colors can yield values outside 0-255.
func (c RGB) Scale255() [3]int {
	return [3]int{
		int(math.RoundToEven(c.R * 255)),
		int(math.RoundToEven(c.G * 255)),
		int(math.RoundToEven(c.B * 255)),
	}
}

// Hex returns the clamped color as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Slice returns the channels in R, G, B order.
func (c RGB) Slice() []float64 {
	return []float64{c.R, c.G, c.B}
}

// String formats c as "[r g b]".
func (c RGB) String() string {
	return fmt.Sprintf("[%s %s %s]", formatFloat(c.R), formatFloat(c.G), formatFloat(c.B))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
