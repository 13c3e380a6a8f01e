package colorfx

// Mat3 is a 3x3 matrix in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// It is a value type; all methods return new values and never mutate the
// receiver.
type Mat3 [9]float64

// Vec3 is a 3-component column vector. Depending on pipeline stage it holds
// either RGB channels or LMS cone responses.
type Vec3 [3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3+0]*other[0*3+col] +
				m[row*3+1]*other[1*3+col] +
				m[row*3+2]*other[2*3+col]
		}
	}
	return r
}

// MulVec applies the matrix to a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Lerp linearly interpolates each entry from m toward other by t.
// t = 0 returns m, t = 1 returns other; t outside [0, 1] extrapolates.
func (m Mat3) Lerp(other Mat3, t float64) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = m[i] + (other[i]-m[i])*t
	}
	return r
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Lerp linearly interpolates each component from v toward other by t.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		v[0] + (other[0]-v[0])*t,
		v[1] + (other[1]-v[1])*t,
		v[2] + (other[2]-v[2])*t,
	}
}
