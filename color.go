package colorfx

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Channel values are nominally in [0, 1] but are not clamped; filter output
// may leave that range. Alpha is always linear (never gamma-encoded).
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface,
// clamping each component into [0, 255] with rounding.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
		A: float64(nc.A) / 255,
	}
}

// channels returns the RGB channels as a vector, dropping alpha.
func (c RGBA) channels() Vec3 {
	return Vec3{c.R, c.G, c.B}
}

// withChannels returns a copy of c with the RGB channels replaced.
// Alpha is carried through untouched.
func (c RGBA) withChannels(v Vec3) RGBA {
	return RGBA{R: v[0], G: v[1], B: v[2], A: c.A}
}

// clampAndRound clamps a component to [0, 1] and converts to uint8 with
// rounding.
func clampAndRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Space identifies one of the two recognized operating color spaces.
type Space uint8

const (
	// SpaceSRGBLinear is linear-light sRGB, the default operating space.
	SpaceSRGBLinear Space = iota
	// SpaceSRGB is gamma-encoded sRGB.
	SpaceSRGB
)

// String returns the canonical identifier for the space.
func (s Space) String() string {
	switch s {
	case SpaceSRGBLinear:
		return "srgb-linear"
	case SpaceSRGB:
		return "srgb"
	default:
		return "unknown"
	}
}

// ParseSpace parses a space identifier ("srgb" or "srgb-linear").
func ParseSpace(s string) (Space, error) {
	switch s {
	case "srgb-linear":
		return SpaceSRGBLinear, nil
	case "srgb":
		return SpaceSRGB, nil
	default:
		return 0, &UnsupportedSpaceError{Space: s}
	}
}

// SRGBToLinear converts a gamma-encoded sRGB component to linear light
// (EOTF). Input and output are nominally in [0, 1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to gamma-encoded sRGB
// (OETF). Input and output are nominally in [0, 1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearColor converts a full color from sRGB to linear space.
// Only RGB components are converted; alpha remains linear.
func SRGBToLinearColor(c RGBA) RGBA {
	return RGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor converts a full color from linear to sRGB space.
// Only RGB components are converted; alpha remains linear.
func LinearToSRGBColor(c RGBA) RGBA {
	return RGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}
