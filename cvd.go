package colorfx

import "math"

// Deficiency identifies a class of color vision deficiency.
type Deficiency uint8

// Deficiency constants.
const (
	// Protan is the loss or anomaly of the long-wavelength (L) cones.
	Protan Deficiency = iota
	// Deutan is the loss or anomaly of the medium-wavelength (M) cones.
	Deutan
	// Tritan is the loss or anomaly of the short-wavelength (S) cones.
	Tritan
)

// String returns the canonical deficiency identifier.
func (d Deficiency) String() string {
	switch d {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	default:
		return "unknown"
	}
}

// Method selects the CVD simulation algorithm.
type Method uint8

// Simulation method constants.
const (
	// MethodDefault selects the per-deficiency default:
	// MethodVienot for protan and deutan, MethodBrettel for tritan.
	MethodDefault Method = iota

	// MethodBrettel is the two-plane projection of Brettel, Viénot &
	// Mollon (1997). The most accurate of the three across the full
	// gamut, and the default for tritan.
	MethodBrettel

	// MethodVienot is the single-matrix approximation of Viénot, Brettel
	// & Mollon (1999). Accurate for protan and deutan, whose confusion
	// lines are close enough to collinear; noticeably worse for tritan.
	MethodVienot

	// MethodMachado is the severity-stepped model of Machado, Oliveira &
	// Fernandes (2009), interpolating between published matrices at 0.1
	// severity steps.
	MethodMachado
)

// String returns the canonical method identifier.
func (m Method) String() string {
	switch m {
	case MethodDefault:
		return "default"
	case MethodBrettel:
		return "brettel"
	case MethodVienot:
		return "vienot"
	case MethodMachado:
		return "machado"
	default:
		return "unknown"
	}
}

// ParseMethod parses a simulation method identifier
// ("brettel", "vienot" or "machado").
func ParseMethod(s string) (Method, error) {
	switch s {
	case "brettel":
		return MethodBrettel, nil
	case "vienot":
		return MethodVienot, nil
	case "machado":
		return MethodMachado, nil
	default:
		return 0, &UnknownMethodError{Method: s}
	}
}

// deficiencyOf maps a CVD filter name to its deficiency.
// Only valid for CategoryCVD names.
func deficiencyOf(n Name) Deficiency {
	return Deficiency(n - FilterProtan)
}

// resolveMethod validates a method and substitutes the per-deficiency
// default for MethodDefault.
func resolveMethod(m Method, d Deficiency) (Method, error) {
	switch m {
	case MethodDefault:
		if d == Tritan {
			return MethodBrettel, nil
		}
		return MethodVienot, nil
	case MethodBrettel, MethodVienot, MethodMachado:
		return m, nil
	default:
		return 0, &UnknownMethodError{Method: m.String()}
	}
}

// Simulate applies a color-vision-deficiency simulation to a linear-light
// sRGB color. The severity is clamped into [0, 1]; severity 0 is the
// identity and severity 1 the full dichromat simulation. Alpha is carried
// through untouched.
//
// Simulate fails with *UnknownMethodError for an unrecognized method.
// Pass MethodDefault to use the per-deficiency default.
func Simulate(c RGBA, d Deficiency, m Method, severity float64) (RGBA, error) {
	if d > Tritan {
		return c, &UnknownFilterError{Name: d.String()}
	}
	m, err := resolveMethod(m, d)
	if err != nil {
		return c, err
	}
	return simulate(c, d, m, severity), nil
}

// simulate runs a validated, concrete simulation.
func simulate(c RGBA, d Deficiency, m Method, severity float64) RGBA {
	severity = clamp01(severity)
	if severity == 0 {
		return c
	}

	if m == MethodMachado {
		// The Machado severity model is unreliable for tritan below full
		// severity: its tritan matrices are not monotonic in severity.
		// Simulate the full dichromat instead and interpolate the final
		// result toward the input.
		if d == Tritan && severity < 1 {
			full := c.channels()
			sim := machadoTables[d][machadoSteps-1].MulVec(full)
			return c.withChannels(full.Lerp(sim, severity))
		}
		return c.withChannels(machadoMatrix(d, severity).MulVec(c.channels()))
	}

	// Brettel and Viénot project onto the full dichromat surface; partial
	// severity interpolates the projected result toward the input.
	in := c.channels()
	var sim Vec3
	if m == MethodBrettel {
		sim = brettelSimulate(in, d)
	} else {
		sim = vienotSimulate(in, d)
	}
	if severity < 1 {
		sim = in.Lerp(sim, severity)
	}
	return c.withChannels(sim)
}

// machadoMatrix interpolates the two table entries bracketing the severity
// at 0.1 steps. Severity 0.75 brackets indices 7 and 8 at fraction 0.5.
func machadoMatrix(d Deficiency, severity float64) Mat3 {
	pos := severity * (machadoSteps - 1)
	lo := int(math.Floor(pos))
	if lo >= machadoSteps-1 {
		return machadoTables[d][machadoSteps-1]
	}
	frac := pos - float64(lo)
	return machadoTables[d][lo].Lerp(machadoTables[d][lo+1], frac)
}

// brettelSimulate projects a linear RGB point through the Brettel 1997
// two-plane model. The sign of the LMS point against the deficiency's
// separation-plane normal picks the projection: cone confusion lines are
// not collinear across the full gamut, so one matrix per half-space is
// required.
func brettelSimulate(rgb Vec3, d Deficiency) Vec3 {
	t := &brettelTables[d]
	lms := lmsFromRGB.MulVec(rgb)
	proj := &t.plane1
	if lms.Dot(t.normal) < 0 {
		proj = &t.plane2
	}
	return rgbFromLMS.MulVec(proj.MulVec(lms))
}

// vienotSimulate projects a linear RGB point through the Viénot 1999
// single-matrix model.
func vienotSimulate(rgb Vec3, d Deficiency) Vec3 {
	lms := lmsFromRGB.MulVec(rgb)
	return rgbFromLMS.MulVec(vienotProjections[d].MulVec(lms))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
