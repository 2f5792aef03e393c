package vec

type Vec2[T Numeric] [2]T

func V2[T Numeric](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Vec2From copies the first two elements of src. Panics when src holds
// fewer than two.
func Vec2From[T Numeric](src []T) Vec2[T] {
	return Vec2[T]{src[0], src[1]}
}

func (v Vec2[T]) Size() int {
	return 2
}

// At returns the element at index i, panicking when i is not 0 or 1. For
// indices known to be valid, v[i] is equivalent.
func (v Vec2[T]) At(i int) T {
	return v[i]
}

// Data returns the vector's storage as a slice of length 2. The slice
// aliases the vector; writes through either are visible through the other.
func (v *Vec2[T]) Data() []T {
	return v[:]
}

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v *Vec2[T]) SetX(x T) { v[0] = x }
func (v *Vec2[T]) SetY(y T) { v[1] = y }

func (v *Vec2[T]) Set(x, y T) {
	v[0] = x
	v[1] = y
}

func (v Vec2[T]) XY() (x, y T) {
	x = v[0]
	y = v[1]
	return
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

func (lhs Vec2[T]) SquaredNorm() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Norm() float64 {
	return Norm(lhs[:])
}

// Normalize scales the vector to unit length in place and returns its
// previous length in T. See the package-level Normalize for the zero-length
// behavior.
func (v *Vec2[T]) Normalize() T {
	return Normalize(v[:])
}

// Normalized returns a unit-length copy, leaving the receiver untouched.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

func (lhs Vec2[T]) Compare(rhs Vec2[T], tol T) bool {
	return Compare(lhs[:], rhs[:], tol)
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) IsZero() bool {
	return lhs == Vec2[T]{}
}

// CastVec2 converts v elementwise to the element type U.
func CastVec2[U, T Numeric](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}
