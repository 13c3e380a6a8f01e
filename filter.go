package colorfx

import "math"

// Name identifies one of the built-in filters. The filter set is fixed;
// there is no open registration.
type Name uint8

// Filter name constants.
const (
	// FilterBrightness scales all channels (W3C).
	FilterBrightness Name = iota

	// FilterSaturate blends between the luma projection and identity (W3C).
	FilterSaturate

	// FilterContrast scales channel deviation from mid-gray (W3C).
	FilterContrast

	// FilterOpacity multiplies alpha, leaving channels untouched (W3C).
	FilterOpacity

	// FilterInvert blends each channel toward its complement (W3C).
	FilterInvert

	// FilterHueRotate rotates channels about the luma axis (W3C).
	FilterHueRotate

	// FilterSepia blends toward the sepia tone matrix (W3C).
	FilterSepia

	// FilterGrayscale blends toward the luma-gray projection (W3C).
	FilterGrayscale

	// FilterProtan simulates protanopia/protanomaly (CVD).
	FilterProtan

	// FilterDeutan simulates deuteranopia/deuteranomaly (CVD).
	FilterDeutan

	// FilterTritan simulates tritanopia/tritanomaly (CVD).
	FilterTritan

	numFilters // sentinel, keep last
)

// String returns the canonical filter identifier.
func (n Name) String() string {
	if int(n) < len(filterNames) {
		return filterNames[n]
	}
	return "unknown"
}

var filterNames = [numFilters]string{
	FilterBrightness: "brightness",
	FilterSaturate:   "saturate",
	FilterContrast:   "contrast",
	FilterOpacity:    "opacity",
	FilterInvert:     "invert",
	FilterHueRotate:  "hue-rotate",
	FilterSepia:      "sepia",
	FilterGrayscale:  "grayscale",
	FilterProtan:     "protan",
	FilterDeutan:     "deutan",
	FilterTritan:     "tritan",
}

// ParseName parses a filter identifier into a Name.
func ParseName(s string) (Name, error) {
	for n, id := range filterNames {
		if s == id {
			return Name(n), nil
		}
	}
	return 0, &UnknownFilterError{Name: s}
}

// Category classifies a filter as a W3C filter effect or a CVD simulation.
type Category uint8

// Filter category constants.
const (
	// CategoryW3C marks the standard W3C filter-effects functions.
	CategoryW3C Category = iota
	// CategoryCVD marks color-vision-deficiency simulation filters.
	CategoryCVD
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryW3C:
		return "W3C"
	case CategoryCVD:
		return "CVD"
	default:
		return "unknown"
	}
}

// Domain is the closed numeric range a filter amount is clamped into.
// Max may be +Inf for unbounded filters; hue-rotate is unbounded on both
// sides.
type Domain struct {
	Min, Max float64
}

// Clamp returns v clamped into the domain.
func (d Domain) Clamp(v float64) float64 {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Descriptor describes one filter: its identity, default amount, amount
// domain, and permitted operating spaces. Descriptors are immutable and
// shared; Resolve returns copies by value.
type Descriptor struct {
	Name     Name
	Category Category
	// Default is the amount used when none is supplied.
	Default float64
	// Domain is the range amounts are clamped into.
	Domain Domain
	// Spaces holds the permitted operating spaces.
	Spaces []Space
}

// AllowsSpace reports whether the filter may operate in the given space.
func (d Descriptor) AllowsSpace(s Space) bool {
	for _, allowed := range d.Spaces {
		if allowed == s {
			return true
		}
	}
	return false
}

// Shared space sets. CVD simulation is defined on linear light only;
// the W3C functions are additionally usable on gamma-encoded values.
var (
	linearOnly   = []Space{SpaceSRGBLinear}
	linearOrSRGB = []Space{SpaceSRGBLinear, SpaceSRGB}
)

// descriptors is the fixed filter table, indexed by Name.
var descriptors = [numFilters]Descriptor{
	FilterBrightness: {FilterBrightness, CategoryW3C, 1, Domain{0, math.Inf(1)}, linearOrSRGB},
	FilterSaturate:   {FilterSaturate, CategoryW3C, 1, Domain{0, math.Inf(1)}, linearOrSRGB},
	FilterContrast:   {FilterContrast, CategoryW3C, 1, Domain{0, math.Inf(1)}, linearOrSRGB},
	FilterOpacity:    {FilterOpacity, CategoryW3C, 1, Domain{0, 1}, linearOrSRGB},
	FilterInvert:     {FilterInvert, CategoryW3C, 1, Domain{0, 1}, linearOrSRGB},
	FilterHueRotate:  {FilterHueRotate, CategoryW3C, 0, Domain{math.Inf(-1), math.Inf(1)}, linearOrSRGB},
	FilterSepia:      {FilterSepia, CategoryW3C, 1, Domain{0, 1}, linearOrSRGB},
	FilterGrayscale:  {FilterGrayscale, CategoryW3C, 1, Domain{0, 1}, linearOrSRGB},
	FilterProtan:     {FilterProtan, CategoryCVD, 1, Domain{0, 1}, linearOnly},
	FilterDeutan:     {FilterDeutan, CategoryCVD, 1, Domain{0, 1}, linearOnly},
	FilterTritan:     {FilterTritan, CategoryCVD, 1, Domain{0, 1}, linearOnly},
}

// Resolve looks up the descriptor for a filter name.
// It returns an *UnknownFilterError if the name is not in the filter set.
func Resolve(name string) (Descriptor, error) {
	n, err := ParseName(name)
	if err != nil {
		return Descriptor{}, err
	}
	return descriptors[n], nil
}

// Option configures a single Apply or Image call.
// Use functional options to customize filter behavior.
//
// Example:
//
//	c, err := colorfx.Apply(c, "protan",
//	    colorfx.WithAmount(0.5),
//	    colorfx.WithMethod(colorfx.MethodMachado))
type Option func(*applyOptions)

// applyOptions holds the resolved per-call configuration.
type applyOptions struct {
	amount    float64
	hasAmount bool
	space     Space
	method    Method
}

// WithAmount sets the filter amount. For CVD filters the amount is the
// deficiency severity. Out-of-domain amounts are clamped, never rejected.
func WithAmount(a float64) Option {
	return func(o *applyOptions) {
		o.amount = a
		o.hasAmount = true
	}
}

// WithSpace declares the operating space the input channels are in.
// The default is SpaceSRGBLinear. Declaring a space a filter does not
// support makes the call fail with *UnsupportedSpaceError.
func WithSpace(s Space) Option {
	return func(o *applyOptions) {
		o.space = s
	}
}

// WithMethod selects the CVD simulation method. It is meaningful only for
// CVD filters and ignored by W3C filters. The default is MethodVienot for
// protan and deutan, MethodBrettel for tritan.
func WithMethod(m Method) Option {
	return func(o *applyOptions) {
		o.method = m
	}
}

// Apply applies the named filter to a color and returns the transformed
// color. The input channels must already be in the operating space declared
// via WithSpace (SpaceSRGBLinear when omitted); the output stays in that
// space and is not gamut-clipped. Alpha is carried through untouched except
// by the opacity filter.
//
// Apply fails with *UnknownFilterError for a name outside the filter set,
// *UnsupportedSpaceError for a space the filter does not permit, and
// *UnknownMethodError for an unrecognized simulation method.
func Apply(c RGBA, name string, opts ...Option) (RGBA, error) {
	d, err := Resolve(name)
	if err != nil {
		return c, err
	}
	o, err := resolveOptions(d, opts)
	if err != nil {
		return c, err
	}
	return transform(c, d, o), nil
}

// resolveOptions materializes per-call options against a descriptor:
// the amount defaulted and clamped, the space validated, and the method
// validated and resolved to a concrete one for CVD filters.
func resolveOptions(d Descriptor, opts []Option) (applyOptions, error) {
	o := applyOptions{space: SpaceSRGBLinear, method: MethodDefault}
	for _, opt := range opts {
		opt(&o)
	}

	if !d.AllowsSpace(o.space) {
		return o, &UnsupportedSpaceError{Filter: d.Name.String(), Space: o.space.String()}
	}

	if o.hasAmount {
		o.amount = d.Domain.Clamp(o.amount)
	} else {
		o.amount = d.Default
	}

	if d.Category == CategoryCVD {
		m, err := resolveMethod(o.method, deficiencyOf(d.Name))
		if err != nil {
			return o, err
		}
		o.method = m
	}
	return o, nil
}

// transform runs the filter on a color. Options must already have been
// resolved; this path cannot fail.
func transform(c RGBA, d Descriptor, o applyOptions) RGBA {
	if d.Category == CategoryCVD {
		return simulate(c, deficiencyOf(d.Name), o.method, o.amount)
	}
	return applyW3C(c, d.Name, o.amount)
}
