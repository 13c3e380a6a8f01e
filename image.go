package colorfx

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image applies the named filter to every pixel of src and writes the
// result into dst at matching coordinates. It is a convenience wrapper over
// the scalar engine; the descriptor and options are resolved and validated
// once, not per pixel.
//
// src pixels are 8-bit gamma-encoded sRGB, as Go images are. When the
// operating space is SpaceSRGBLinear (the default) each pixel is moved to
// linear light around the filter call and re-encoded afterwards; with
// SpaceSRGB the filter runs on the encoded values directly. Either way the
// result is clamped into [0, 255] on store, which is the one place this
// package clips: 8-bit image storage cannot represent out-of-gamut values.
//
// dst must cover src.Bounds(); pixels outside dst's bounds are dropped by
// the underlying Set calls.
func Image(dst draw.Image, src image.Image, name string, opts ...Option) error {
	d, err := Resolve(name)
	if err != nil {
		return err
	}
	o, err := resolveOptions(d, opts)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	Logger().Debug("applying filter to image",
		"filter", d.Name.String(),
		"amount", o.amount,
		"space", o.space.String(),
		"bounds", bounds.String())

	// Normalize the source to straight-alpha NRGBA so the pixel loop reads
	// raw bytes instead of going through the color.Color interface.
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Bounds() != bounds {
		nrgba = image.NewNRGBA(bounds)
		xdraw.Copy(nrgba, bounds.Min, src, bounds, xdraw.Src, nil)
	}

	linear := o.space == SpaceSRGBLinear
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := nrgba.Pix[(y-bounds.Min.Y)*nrgba.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := (x - bounds.Min.X) * 4
			c := RGBA{
				R: float64(row[i+0]) / 255,
				G: float64(row[i+1]) / 255,
				B: float64(row[i+2]) / 255,
				A: float64(row[i+3]) / 255,
			}
			if linear {
				c = SRGBToLinearColor(c)
			}
			c = transform(c, d, o)
			if linear {
				c = LinearToSRGBColor(c)
			}
			dst.Set(x, y, c.Color())
		}
	}
	return nil
}
