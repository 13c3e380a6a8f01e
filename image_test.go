package colorfx

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// uniformNRGBA creates an image filled with the given color.
func uniformNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestImageMatchesScalarEngine(t *testing.T) {
	px := color.NRGBA{R: 200, G: 90, B: 40, A: 255}
	src := uniformNRGBA(4, 4, px)
	dst := image.NewNRGBA(src.Bounds())

	if err := Image(dst, src, "sepia", WithAmount(0.8)); err != nil {
		t.Fatal(err)
	}

	// The helper decodes bytes, linearizes, filters, re-encodes, clamps.
	c := RGBA{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255, A: 1}
	want, err := Apply(SRGBToLinearColor(c), "sepia", WithAmount(0.8))
	if err != nil {
		t.Fatal(err)
	}
	wantPx := LinearToSRGBColor(want).Color().(color.NRGBA)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dst.NRGBAAt(x, y); got != wantPx {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, wantPx)
			}
		}
	}
}

func TestImageSRGBSpaceSkipsLinearization(t *testing.T) {
	px := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	src := uniformNRGBA(2, 2, px)
	dst := image.NewNRGBA(src.Bounds())

	if err := Image(dst, src, "invert", WithAmount(1), WithSpace(SpaceSRGB)); err != nil {
		t.Fatal(err)
	}

	c := RGBA{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255, A: 1}
	want, err := Apply(c, "invert", WithAmount(1), WithSpace(SpaceSRGB))
	if err != nil {
		t.Fatal(err)
	}
	wantPx := want.Color().(color.NRGBA)

	if got := dst.NRGBAAt(0, 0); got != wantPx {
		t.Errorf("pixel = %+v, want %+v", got, wantPx)
	}
}

func TestImageOpacity(t *testing.T) {
	src := uniformNRGBA(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 200})
	dst := image.NewNRGBA(src.Bounds())

	if err := Image(dst, src, "opacity", WithAmount(0.5)); err != nil {
		t.Fatal(err)
	}

	got := dst.NRGBAAt(1, 1)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("opacity changed channels: %+v", got)
	}
	if got.A != 100 {
		t.Errorf("alpha = %d, want 100", got.A)
	}
}

func TestImageCVDSimulation(t *testing.T) {
	src := uniformNRGBA(3, 3, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	dst := image.NewNRGBA(src.Bounds())

	if err := Image(dst, src, "deutan"); err != nil {
		t.Fatal(err)
	}

	got := dst.NRGBAAt(1, 1)
	// A deuteranope cannot see pure red as red: green must rise to meet it.
	if got.G == 0 {
		t.Errorf("deutan simulation left green at 0: %+v", got)
	}
	if got.R == 255 {
		t.Errorf("deutan simulation left red untouched: %+v", got)
	}
}

func TestImageNonNRGBASource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dst := image.NewNRGBA(src.Bounds())

	if err := Image(dst, src, "grayscale", WithAmount(1)); err != nil {
		t.Fatal(err)
	}
	got := dst.NRGBAAt(0, 0)
	// White is neutral: grayscale must leave it white.
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("grayscale on white = %+v, want white", got)
	}
}

func TestImageErrorPropagation(t *testing.T) {
	src := uniformNRGBA(1, 1, color.NRGBA{A: 255})
	dst := image.NewNRGBA(src.Bounds())

	var unknown *UnknownFilterError
	if err := Image(dst, src, "posterize"); !errors.As(err, &unknown) {
		t.Errorf("unknown filter error = %v, want *UnknownFilterError", err)
	}

	var spaceErr *UnsupportedSpaceError
	err := Image(dst, src, "protan", WithSpace(SpaceSRGB))
	if !errors.As(err, &spaceErr) {
		t.Errorf("protan in srgb error = %v, want *UnsupportedSpaceError", err)
	}
}

func BenchmarkImageSepia(b *testing.B) {
	src := uniformNRGBA(64, 64, color.NRGBA{R: 180, G: 120, B: 60, A: 255})
	dst := image.NewNRGBA(src.Bounds())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Image(dst, src, "sepia")
	}
}
