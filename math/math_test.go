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

func TestVec3Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := Vec3Up
	result := v.Reflect(n)
	expected := NewVec3(1, 1, 0)
	if result != expected {
		t.Errorf("Reflect: expected %v, got %v", expected, result)
	}
}

func TestVec3RefractTotalInternalReflection(t *testing.T) {
	// A steep grazing ray going from dense to sparse medium cannot refract.
	v := NewVec3(1, -0.01, 0).Normalize()
	n := Vec3Up
	result := v.Refract(n, 1.5)
	if result != Vec3Zero {
		t.Errorf("Refract: expected zero vector on total internal reflection, got %v", result)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("NearZero: expected true for tiny components")
	}
	if NewVec3(0.1, 0, 0).NearZero() {
		t.Error("NearZero: expected false for a non-tiny component")
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
	m := Mat4TRS(NewVec3(1, 2, 3), NewVec3(0, float32(math.Pi/4), 0), NewVec3(2, 2, 2))
	inv := m.Inverse()
	product := m.Mul(inv)

	identity := Mat4Identity()
	const tolerance = 1e-3
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(product[i][j]-identity[i][j])) > tolerance {
				t.Errorf("Inverse: M*M^-1[%d][%d] = %v, want %v", i, j, product[i][j], identity[i][j])
			}
		}
	}
}

func TestIntervalEnclosing(t *testing.T) {
	a := NewInterval(0, 5)
	b := NewInterval(3, 8)
	e := EnclosingInterval(a, b)

	for _, x := range []float32{-1, 0, 2.5, 4, 7, 8, 9} {
		want := a.Contains(x) || b.Contains(x)
		got := e.Contains(x)
		if got != want {
			t.Errorf("enclosing.Contains(%v): expected %v to match a.Contains||b.Contains (%v), got %v", x, want, want, got)
		}
	}
}

func TestIntervalExpand(t *testing.T) {
	i := NewInterval(1, 4)
	expanded := i.Expand(2)
	if expanded.Size() != i.Size()+2 {
		t.Errorf("Expand: expected size %v, got %v", i.Size()+2, expanded.Size())
	}
}

func TestAABBPadding(t *testing.T) {
	box := AABBFromCorners(NewVec3(0, 0, 0), NewVec3(0, 1, 1))
	if box.X.Size() < padEpsilon-1e-6 {
		t.Errorf("AABB padding: expected X width >= %v, got %v", padEpsilon, box.X.Size())
	}
}

func TestAABBSlabHit(t *testing.T) {
	box := NewAABB(NewInterval(-1, 1), NewInterval(-1, 1), NewInterval(-1, 1))
	ray := NewRay(NewVec3(-10, 0, 0), Vec3Right)

	tRange := NewInterval(0, float32(math.Inf(1)))
	hit := box.Hit(ray, tRange)
	if !hit {
		t.Fatal("expected ray to hit AABB")
	}
	const tolerance = 1e-4
	if math.Abs(float64(tRange.Min-9)) > tolerance || math.Abs(float64(tRange.Max-11)) > tolerance {
		t.Errorf("expected t_interval narrowed to [9, 11], got [%v, %v]", tRange.Min, tRange.Max)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewInterval(0, 10), NewInterval(0, 1), NewInterval(0, 1))
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("LongestAxis: expected 0, got %d", axis)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 0, 0), Vec3Front)
	p := r.At(2)
	expected := NewVec3(1, 0, 2)
	if p != expected {
		t.Errorf("Ray.At: expected %v, got %v", expected, p)
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

func BenchmarkAABBHit(b *testing.B) {
	box := NewAABB(NewInterval(-1, 1), NewInterval(-1, 1), NewInterval(-1, 1))
	ray := NewRay(NewVec3(-10, 0, 0), Vec3Right)

	for i := 0; i < b.N; i++ {
		_ = box.Hit(ray, NewInterval(0, float32(math.Inf(1))))
	}
}
