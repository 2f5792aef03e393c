package vec

type Vec2i = Vec2[int]
type Vec2f = Vec2[float32]
type Vec2d = Vec2[float64]

type Vec3i = Vec3[int]
type Vec3f = Vec3[float32]
type Vec3d = Vec3[float64]

type Rect2i = Rect2[int]
type Rect2f = Rect2[float32]
type Rect2d = Rect2[float64]
