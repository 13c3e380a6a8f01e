package colorfx

import "fmt"

// UnknownFilterError is returned when a filter name is not in the fixed
// filter set.
type UnknownFilterError struct {
	// Name is the unrecognized filter identifier.
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("colorfx: unknown filter %q", e.Name)
}

// UnsupportedSpaceError is returned when a color space is not permitted for
// the requested filter, or when a space identifier cannot be parsed.
// CVD filters permit only srgb-linear; W3C filters permit srgb-linear and
// srgb.
type UnsupportedSpaceError struct {
	// Filter is the filter the space was requested for.
	// Empty when the space identifier itself failed to parse.
	Filter string
	// Space is the rejected space identifier.
	Space string
}

func (e *UnsupportedSpaceError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("colorfx: unrecognized color space %q", e.Space)
	}
	return fmt.Sprintf("colorfx: filter %q does not support color space %q", e.Filter, e.Space)
}

// UnknownMethodError is returned when a CVD simulation method is not one of
// the three recognized methods, or names a method/deficiency combination
// with no table entry.
type UnknownMethodError struct {
	// Method is the rejected method identifier.
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("colorfx: unknown simulation method %q", e.Method)
}
