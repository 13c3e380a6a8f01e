package colorfx

// Test helper functions shared across the package tests.

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// near compares two floats with tolerance.
func near(a, b, tolerance float64) bool {
	return absf(a-b) < tolerance
}

// colorNear compares two colors with tolerance.
func colorNear(a, b RGBA, tolerance float64) bool {
	return near(a.R, b.R, tolerance) &&
		near(a.G, b.G, tolerance) &&
		near(a.B, b.B, tolerance) &&
		near(a.A, b.A, tolerance)
}

// vecNear compares two vectors with tolerance.
func vecNear(a, b Vec3, tolerance float64) bool {
	return near(a[0], b[0], tolerance) &&
		near(a[1], b[1], tolerance) &&
		near(a[2], b[2], tolerance)
}

// matNear compares two matrices with tolerance.
func matNear(a, b Mat3, tolerance float64) bool {
	for i := range a {
		if !near(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}
