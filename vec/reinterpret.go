package vec

import "unsafe"

// This file is the only place vectors and flat buffers alias each other.
// Everything here is zero-copy: the results share storage with the input,
// and are valid exactly as long as the input's backing array is.

// AsVec2 views the first two elements of s as a Vec2. Panics when s holds
// fewer than two elements.
func AsVec2[T Numeric](s []T) *Vec2[T] {
	return (*Vec2[T])(s)
}

// AsVec3 views the first three elements of s as a Vec3. Panics when s holds
// fewer than three elements.
func AsVec3[T Numeric](s []T) *Vec3[T] {
	return (*Vec3[T])(s)
}

// AsVec2Slice reinterprets a flat buffer as a run of 2D vectors: a []T of
// length 6 becomes a []Vec2[T] of length 3. Trailing elements beyond the
// last full vector are not part of the result.
func AsVec2Slice[T Numeric](flat []T) []Vec2[T] {
	n := len(flat) / 2
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Vec2[T])(unsafe.Pointer(&flat[0])), n)
}

// AsVec3Slice reinterprets a flat buffer as a run of 3D vectors.
func AsVec3Slice[T Numeric](flat []T) []Vec3[T] {
	n := len(flat) / 3
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Vec3[T])(unsafe.Pointer(&flat[0])), n)
}

// Vec2Data flattens a run of 2D vectors back into its underlying elements.
func Vec2Data[T Numeric](vs []Vec2[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0][0], len(vs)*2)
}

// Vec3Data flattens a run of 3D vectors back into its underlying elements.
func Vec3Data[T Numeric](vs []Vec3[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0][0], len(vs)*3)
}
