package vec

type Vec3[T Numeric] [3]T

func V3[T Numeric](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Vec3From copies the first three elements of src. Panics when src holds
// fewer than three.
func Vec3From[T Numeric](src []T) Vec3[T] {
	return Vec3[T]{src[0], src[1], src[2]}
}

func (v Vec3[T]) Size() int {
	return 3
}

// At returns the element at index i, panicking when i is outside [0, 3).
func (v Vec3[T]) At(i int) T {
	return v[i]
}

// Data returns the vector's storage as a slice of length 3. The slice
// aliases the vector; writes through either are visible through the other.
func (v *Vec3[T]) Data() []T {
	return v[:]
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

func (v *Vec3[T]) Set(x, y, z T) {
	v[0] = x
	v[1] = y
	v[2] = z
}

func (v Vec3[T]) XYZ() (x, y, z T) {
	x = v[0]
	y = v[1]
	z = v[2]
	return
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2])
}

func (lhs Vec3[T]) SquaredNorm() T {
	return lhs.Dot(lhs)
}

func (lhs Vec3[T]) Norm() float64 {
	return Norm(lhs[:])
}

// Normalize scales the vector to unit length in place and returns its
// previous length in T. See the package-level Normalize for the zero-length
// behavior.
func (v *Vec3[T]) Normalize() T {
	return Normalize(v[:])
}

// Normalized returns a unit-length copy, leaving the receiver untouched.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

func (lhs Vec3[T]) Compare(rhs Vec3[T], tol T) bool {
	return Compare(lhs[:], rhs[:], tol)
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - lhs[2]*rhs[1],
		lhs[2]*rhs[0] - lhs[0]*rhs[2],
		lhs[0]*rhs[1] - lhs[1]*rhs[0],
	}
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
	}
}

func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs Vec3[T]) IsZero() bool {
	return lhs == Vec3[T]{}
}

// CastVec3 converts v elementwise to the element type U.
func CastVec3[U, T Numeric](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}
