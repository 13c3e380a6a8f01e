package colorfx

import "math"

// W3C filter-effects color functions.
// Matrix coefficients follow https://www.w3.org/TR/filter-effects-1/.

// grayProjection collapses channels onto the Rec. 709 luma axis.
// Used by grayscale.
var grayProjection = Mat3{
	0.2126, 0.7152, 0.0722,
	0.2126, 0.7152, 0.0722,
	0.2126, 0.7152, 0.0722,
}

// lumaProjection is the NTSC-derived luma projection used by saturate and
// hue-rotate. The weights differ from grayProjection per the filter-effects
// specification.
var lumaProjection = Mat3{
	0.213, 0.715, 0.072,
	0.213, 0.715, 0.072,
	0.213, 0.715, 0.072,
}

// sepiaTone is the full-strength sepia matrix.
var sepiaTone = Mat3{
	0.393, 0.769, 0.189,
	0.349, 0.686, 0.168,
	0.272, 0.534, 0.131,
}

// applyW3C dispatches a W3C filter. The amount has already been clamped
// into the filter's domain.
func applyW3C(c RGBA, n Name, amount float64) RGBA {
	switch n {
	case FilterBrightness:
		return RGBA{R: c.R * amount, G: c.G * amount, B: c.B * amount, A: c.A}

	case FilterContrast:
		// Scale deviation from mid-gray: c*amount + (1-amount)*0.5.
		intercept := (1 - amount) * 0.5
		return RGBA{
			R: c.R*amount + intercept,
			G: c.G*amount + intercept,
			B: c.B*amount + intercept,
			A: c.A,
		}

	case FilterInvert:
		// Blend each channel toward its complement by amount.
		return RGBA{
			R: amount + c.R*(1-2*amount),
			G: amount + c.G*(1-2*amount),
			B: amount + c.B*(1-2*amount),
			A: c.A,
		}

	case FilterOpacity:
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A * amount}

	case FilterSaturate:
		// Full desaturation at 0, identity at 1, supersaturation above 1.
		m := Identity().Lerp(lumaProjection, 1-amount)
		return c.withChannels(m.MulVec(c.channels()))

	case FilterGrayscale:
		m := Identity().Lerp(grayProjection, amount)
		return c.withChannels(m.MulVec(c.channels()))

	case FilterSepia:
		m := Identity().Lerp(sepiaTone, amount)
		return c.withChannels(m.MulVec(c.channels()))

	case FilterHueRotate:
		m := hueRotateMatrix(amount)
		return c.withChannels(m.MulVec(c.channels()))
	}
	return c
}

// hueRotateMatrix builds the rotation about the luma axis for an angle in
// degrees. Any real angle is accepted; the trigonometric construction wraps
// modulo 360 by itself.
func hueRotateMatrix(degrees float64) Mat3 {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	return Mat3{
		0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928,
		0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283,
		0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072,
	}
}
