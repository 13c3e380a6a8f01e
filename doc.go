// Package colorfx applies named color filters to individual color values.
//
// # Overview
//
// colorfx implements the W3C Filter Effects color functions (brightness,
// saturate, contrast, opacity, invert, hue-rotate, sepia, grayscale) and
// color-vision-deficiency simulation (protan, deutan, tritan) with three
// selectable simulation methods: Brettel 1997, Viénot 1999, and
// Machado 2009.
//
// # Quick Start
//
//	import "github.com/gogpu/colorfx"
//
//	// Half-strength sepia on a linear-light color.
//	c, err := colorfx.Apply(colorfx.RGB(0.8, 0.4, 0.2), "sepia",
//	    colorfx.WithAmount(0.5))
//
//	// Simulate deuteranopia with the Machado model at 70% severity.
//	c, err = colorfx.Apply(c, "deutan",
//	    colorfx.WithAmount(0.7), colorfx.WithMethod(colorfx.MethodMachado))
//
// # Operating Spaces
//
// Every filter operates on channel values the caller has already placed in
// one of two spaces: linear-light sRGB (SpaceSRGBLinear, the default) or
// gamma-encoded sRGB (SpaceSRGB). The engine never converts between spaces
// behind the caller's back; WithSpace only declares which space the input
// is in, and the output stays in that space. CVD filters accept the linear
// space only. Helpers SRGBToLinearColor and LinearToSRGBColor are provided
// for callers that need to move values between the two.
//
// Output channels are not gamut-clipped and may leave [0, 1]; clipping, if
// wanted, is the caller's concern.
//
// # Amounts
//
// Every filter has a default amount and a valid domain (see Resolve).
// Out-of-domain amounts are clamped to the nearest boundary rather than
// rejected. For CVD filters the amount is the deficiency severity in [0, 1].
//
// # Concurrency
//
// All transforms are pure functions over immutable inputs and read-only
// tables built at package initialization, so every function in this package
// is safe for unsynchronized concurrent use.
package colorfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
