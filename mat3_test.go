package colorfx

import "testing"

func TestIdentityMulVec(t *testing.T) {
	v := Vec3{0.25, 0.5, 0.75}
	if got := Identity().MulVec(v); got != v {
		t.Errorf("Identity().MulVec(%v) = %v, want unchanged", v, got)
	}
}

func TestMat3MulIdentity(t *testing.T) {
	m := Mat3{
		0.393, 0.769, 0.189,
		0.349, 0.686, 0.168,
		0.272, 0.534, 0.131,
	}
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m.Mul(I) = %v, want m", got)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I.Mul(m) = %v, want m", got)
	}
}

func TestMat3MulVecKnown(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	v := Vec3{1, 0, -1}
	want := Vec3{-2, -2, -2}
	if got := m.MulVec(v); got != want {
		t.Errorf("MulVec = %v, want %v", got, want)
	}
}

func TestMat3MulMatchesComposedMulVec(t *testing.T) {
	a := Mat3{
		0.2, 0.5, 0.3,
		0.1, 0.8, 0.1,
		0.4, 0.4, 0.2,
	}
	b := Mat3{
		1.5, -0.5, 0,
		0.25, 1, -0.25,
		0, -1, 2,
	}
	v := Vec3{0.3, 0.6, 0.9}

	composed := a.Mul(b).MulVec(v)
	sequential := a.MulVec(b.MulVec(v))
	if !vecNear(composed, sequential, 1e-12) {
		t.Errorf("(a*b)*v = %v, a*(b*v) = %v", composed, sequential)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := Mat3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose = %v, want %v", got, want)
	}
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("double transpose = %v, want original", got)
	}
}

func TestMat3Lerp(t *testing.T) {
	a := Identity()
	b := Mat3{
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want first operand", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want second operand", got)
	}
	mid := a.Lerp(b, 0.5)
	if !near(mid[0], 0.5, 1e-15) || !near(mid[4], 0.5, 1e-15) || !near(mid[1], 0, 1e-15) {
		t.Errorf("Lerp(t=0.5) = %v, want halved diagonal", mid)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 1, 2}
	b := Vec3{1, 0, 4}
	want := Vec3{0.25, 0.75, 2.5}
	if got := a.Lerp(b, 0.25); !vecNear(got, want, 1e-15) {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}
