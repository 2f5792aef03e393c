package vec

import "math"

// Dot returns the sum over i of a[i]*b[i]. Panics when b is shorter than a.
func Dot[T Numeric](a, b []T) T {
	var result T
	for i := range a {
		result += a[i] * b[i]
	}
	return result
}

// SquaredNorm returns the sum of squares of the elements, in T.
func SquaredNorm[T Numeric](v []T) T {
	return Dot(v, v)
}

// Norm returns the euclidean length of v. The square root is always taken
// in float64, whatever T is.
func Norm[T Numeric](v []T) float64 {
	return math.Sqrt(float64(SquaredNorm(v)))
}

// Normalize scales v to unit length in place and returns the length it had
// before, in T.
//
// A zero-length v is not guarded against: floating element types end up
// with Inf or NaN elements, integer element types panic with a division by
// zero.
func Normalize[T Numeric](v []T) T {
	norm := T(Norm(v))
	for i := range v {
		v[i] /= norm
	}
	return norm
}

// Compare reports whether a and b have the same length and every pair of
// corresponding elements differs by strictly less than tol. Unlike Dot, a
// length mismatch is not a caller error; it just compares unequal.
func Compare[T Numeric](a, b []T, tol T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if absDiff(a[i], b[i]) >= tol {
			return false
		}
	}
	return true
}

// absDiff works for unsigned T too, where -(a-b) would wrap around.
func absDiff[T Numeric](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// Cast converts src elementwise to U, following Go's native conversion
// rules (float to integer truncates, etc).
func Cast[U, T Numeric](src []T) []U {
	dst := make([]U, len(src))
	for i := range src {
		dst[i] = U(src[i])
	}
	return dst
}
