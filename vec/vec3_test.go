package vec

import (
	"math"
	"testing"
)

func TestVec3Storage(t *testing.T) {
	var v Vec3d
	v.Set(1, 2, 3)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Fatalf("v=%v", v)
	}

	v.SetZ(9)
	if v.At(2) != 9 {
		t.Fatalf("z=%v", v.At(2))
	}
	if v.Size() != 3 {
		t.Fatalf("size=%d", v.Size())
	}

	x, y, z := v.XYZ()
	if x != 1 || y != 2 || z != 9 {
		t.Fatalf("xyz=%v,%v,%v", x, y, z)
	}
}

func TestVec3Cross(t *testing.T) {
	a := V3(1.0, 0.0, 0.0)
	b := V3(0.0, 1.0, 0.0)

	got := a.Cross(b)
	if got != V3(0.0, 0.0, 1.0) {
		t.Fatalf("cross=%v", got)
	}
	if math.Abs(got.Norm()-1) > 1e-12 {
		t.Fatalf("cross norm=%v", got.Norm())
	}

	// anti-commutative
	if a.Cross(b) != b.Cross(a).MulScalar(-1) {
		t.Fatalf("a×b=%v b×a=%v", a.Cross(b), b.Cross(a))
	}

	v := V3(2.0, -3.0, 7.0)
	if !v.Cross(v).IsZero() {
		t.Fatalf("v×v=%v", v.Cross(v))
	}
}

func TestVec3Normalize(t *testing.T) {
	for _, v := range []Vec3d{
		V3(3.0, 4.0, 0.0),
		V3(1.0, 1.0, 1.0),
		V3(-2.0, 0.5, 10.0),
	} {
		u := v.Normalized()
		if math.Abs(u.Norm()-1) > 1e-6 {
			t.Fatalf("normalized %v -> norm %v", v, u.Norm())
		}
	}

	v := V3(3.0, 4.0, 0.0)
	if pre := v.Normalize(); pre != 5 {
		t.Fatalf("pre-norm=%v", pre)
	}
	if !v.Compare(V3(0.6, 0.8, 0.0), 1e-12) {
		t.Fatalf("v=%v", v)
	}
}

func TestVec3CompareSizes(t *testing.T) {
	v2 := V2(1.0, 2.0)
	v3 := V3(1.0, 2.0, 0.0)

	// type-erased comparison across sizes only matches equal lengths
	if Compare(v3.Data(), v2.Data(), 1) {
		t.Fatalf("3-vector compared equal to 2-vector")
	}
}

func TestVec3Truncate(t *testing.T) {
	if V3(1.0, 2.0, 3.0).Truncate() != V2(1.0, 2.0) {
		t.Fatalf("truncate=%v", V3(1.0, 2.0, 3.0).Truncate())
	}
}

func TestCastVec3(t *testing.T) {
	v := CastVec3[float32](V3(1, 2, 3))
	var _ Vec3f = v
	if v != V3[float32](1, 2, 3) {
		t.Fatalf("cast=%v", v)
	}
}

func TestVec3From(t *testing.T) {
	v := Vec3From([]int{4, 5, 6, 7})
	if v != V3(4, 5, 6) {
		t.Fatalf("v=%v", v)
	}
}
