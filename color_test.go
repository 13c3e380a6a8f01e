package colorfx

import (
	"errors"
	"image/color"
	"testing"
)

func TestSRGBTransferRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.04045, 0.1, 0.25, 0.5, 0.75, 1} {
		back := LinearToSRGB(SRGBToLinear(v))
		if !near(back, v, 1e-12) {
			t.Errorf("round trip of %v = %v", v, back)
		}
	}
}

func TestSRGBTransferKnownValues(t *testing.T) {
	// 0.5 encoded is ~0.2140 linear, a standard reference point.
	if got := SRGBToLinear(0.5); !near(got, 0.21404114, 1e-6) {
		t.Errorf("SRGBToLinear(0.5) = %v, want ~0.21404", got)
	}
	if got := LinearToSRGB(1); !near(got, 1, 1e-12) {
		t.Errorf("LinearToSRGB(1) = %v, want 1", got)
	}
}

func TestSRGBToLinearColorKeepsAlpha(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.25, B: 0.75, A: 0.6}
	got := SRGBToLinearColor(c)
	if got.A != c.A {
		t.Errorf("alpha changed: %v, want %v", got.A, c.A)
	}
	back := LinearToSRGBColor(got)
	if !colorNear(back, c, 1e-12) {
		t.Errorf("round trip = %+v, want %+v", back, c)
	}
}

func TestColorConversion(t *testing.T) {
	c := RGB(1, 0.5, 0)
	nc, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c.Color())
	}
	if nc.R != 255 || nc.A != 255 {
		t.Errorf("Color() = %+v, want R=255 A=255", nc)
	}

	round := FromColor(nc)
	if !colorNear(round, c, 1.0/255) {
		t.Errorf("FromColor(Color()) = %+v, want ~%+v", round, c)
	}
}

func TestColorClampsOutOfGamut(t *testing.T) {
	c := RGBA{R: 1.8, G: -0.4, B: 0.5, A: 1}
	nc := c.Color().(color.NRGBA)
	if nc.R != 255 || nc.G != 0 {
		t.Errorf("Color() = %+v, want clamped R=255 G=0", nc)
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in      string
		want    Space
		wantErr bool
	}{
		{"srgb", SpaceSRGB, false},
		{"srgb-linear", SpaceSRGBLinear, false},
		{"display-p3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSpace(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpace(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			var spaceErr *UnsupportedSpaceError
			if !errors.As(err, &spaceErr) {
				t.Errorf("ParseSpace(%q) error type = %T, want *UnsupportedSpaceError", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpace(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpaceString(t *testing.T) {
	if SpaceSRGB.String() != "srgb" || SpaceSRGBLinear.String() != "srgb-linear" {
		t.Errorf("Space.String() mismatch: %q, %q", SpaceSRGB, SpaceSRGBLinear)
	}
	if Space(9).String() != "unknown" {
		t.Errorf("invalid space String() = %q, want unknown", Space(9))
	}
}
