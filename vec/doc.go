// Package vec provides fixed-size numeric vectors for geometric computation:
// points, directions and normals.
//
// Vec2 and Vec3 are plain arrays of their element type. A Vec2[float32] has
// exactly the memory layout of a [2]float32, so a flat []float32 of length 6
// can be reinterpreted as three Vec2[float32] values back to back without
// copying (see AsVec2Slice). Concrete instantiations for the common element
// types are provided as aliases (Vec2f, Vec3d, ...); because they are
// aliases and not distinct types, every generic operation returns the
// concrete type directly.
//
// The package-level functions (Dot, Norm, Normalize, Compare, Cast, ...)
// operate on the contiguous storage itself and work for any length. They are
// the building blocks the vector methods delegate to, and the way to handle
// vectors whose size is only known at runtime.
package vec
