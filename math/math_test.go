package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3AlmostEqual(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(1.00001, 1.99999, 3)

	if !a.AlmostEqual(b, 0.001) {
		t.Errorf("AlmostEqual: expected %v ~= %v", a, b)
	}
	if a.AlmostEqual(b, 0.0000001) {
		t.Errorf("AlmostEqual: expected %v != %v at tight tolerance", a, b)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	// Check diagonal is 1
	for i := 0; i < 4; i++ {
		if m[i][i] != 1 {
			t.Errorf("Identity: expected diagonal to be 1, got %v", m[i][i])
		}
	}

	// Check non-diagonal is 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j && m[i][j] != 0 {
				t.Errorf("Identity: expected non-diagonal to be 0, got %v", m[i][j])
			}
		}
	}
}

func TestMat4Multiplication(t *testing.T) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	result := m1.Mul(m2)

	// Identity * Identity = Identity
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if result[i][j] != expected {
				t.Errorf("Mul: expected [%d][%d] = %v, got %v", i, j, expected, result[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	// Check translation components
	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	// Test transforming a point
	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4Compose(
		NewVec3(4, -2, 7),
		QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/3)),
		NewVec3(2, 2, 2),
	)

	inv := m.Inverse()
	product := m.Mul(inv)
	identity := Mat4Identity()

	tolerance := 0.0001
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(product[i][j]-identity[i][j])) > tolerance {
				t.Errorf("Inverse: M*M^-1 [%d][%d] = %v, expected %v", i, j, product[i][j], identity[i][j])
			}
		}
	}
}

func TestMat4InverseSingular(t *testing.T) {
	// Zero scale collapses the matrix; Inverse falls back to identity
	m := Mat4Scale(NewVec3(0, 0, 0))
	inv := m.Inverse()

	if inv != Mat4Identity() {
		t.Errorf("Inverse: expected identity for singular matrix, got %v", inv)
	}
}

func TestMat4ComposeDecompose(t *testing.T) {
	position := NewVec3(1.5, -3, 10)
	rotation := QuaternionFromAxisAngle(NewVec3(1, 1, 0).Normalize(), 0.75)
	scale := NewVec3(2, 0.5, 3)

	m := Mat4Compose(position, rotation, scale)
	gotPos, gotRot, gotScale := m.Decompose()

	tolerance := float32(0.0001)
	if !gotPos.AlmostEqual(position, tolerance) {
		t.Errorf("Decompose: expected position %v, got %v", position, gotPos)
	}
	if !gotRot.AlmostEqual(rotation, tolerance) {
		t.Errorf("Decompose: expected rotation %v, got %v", rotation, gotRot)
	}
	if !gotScale.AlmostEqual(scale, tolerance) {
		t.Errorf("Decompose: expected scale %v, got %v", scale, gotScale)
	}
}

func TestMat4ComposeMovesPoint(t *testing.T) {
	// 90 degrees around Y with uniform scale 2, then translate
	m := Mat4Compose(
		NewVec3(10, 0, 0),
		QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2)),
		NewVec3(2, 2, 2),
	)

	result := m.MulVec3(NewVec3(1, 0, 0))
	expected := NewVec3(10, 0, -2)

	if !result.AlmostEqual(expected, 0.0001) {
		t.Errorf("Compose: expected %v, got %v", expected, result)
	}
}

func TestQuaternionIdentity(t *testing.T) {
	q := QuaternionIdentity()

	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("QuaternionIdentity: expected (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degree rotation around Y axis
	q := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))

	// Rotate the X unit vector 90 degrees around Y should give Z
	result := q.RotateVector(Vec3Right)

	// Check that result is approximately -Z (due to coordinate system)
	tolerance := float32(0.001)
	if math.Abs(float64(result.X-0)) > float64(tolerance) ||
		math.Abs(float64(result.Y-0)) > float64(tolerance) ||
		math.Abs(float64(result.Z+1)) > float64(tolerance) {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestQuaternionFromMat4RoundTrip(t *testing.T) {
	axes := []Vec3{
		Vec3Up,
		Vec3Right,
		Vec3Front,
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-1, 0.5, 2).Normalize(),
	}
	angles := []float32{0, 0.1, float32(math.Pi / 2), 2.5, float32(math.Pi) - 0.01}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuaternionFromAxisAngle(axis, angle)
			back := QuaternionFromMat4(q.ToMat4())

			if !back.AlmostEqual(q, 0.0001) {
				t.Errorf("QuaternionFromMat4: axis %v angle %v: expected %v, got %v", axis, angle, q, back)
			}
		}
	}
}

func TestQuaternionAlmostEqualDoubleCover(t *testing.T) {
	q := QuaternionFromAxisAngle(Vec3Up, 1.2)
	negated := NewQuaternion(-q.X, -q.Y, -q.Z, -q.W)

	// q and -q represent the same rotation
	if !q.AlmostEqual(negated, 0.0001) {
		t.Errorf("AlmostEqual: expected %v to match its negation", q)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
