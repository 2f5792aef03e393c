package vec

// Rect2 is an axis-aligned rectangle spanned by its Min and Max corners.
type Rect2[T Numeric] struct {
	Min Vec2[T]
	Max Vec2[T]
}

func RectFromSize[T Numeric](pos Vec2[T], size Vec2[T]) Rect2[T] {
	return RectFromPoints(pos, pos.Add(size))
}

func RectFromPoints[T Numeric](a, b Vec2[T]) Rect2[T] {
	return Rect2[T]{
		Min: Vec2[T]{
			min(a[0], b[0]),
			min(a[1], b[1]),
		},
		Max: Vec2[T]{
			max(a[0], b[0]),
			max(a[1], b[1]),
		},
	}
}

func (r Rect2[T]) Extend(point Vec2[T]) Rect2[T] {
	minX := min(r.Min[0], point[0])
	minY := min(r.Min[1], point[1])

	maxX := max(r.Max[0], point[0])
	maxY := max(r.Max[1], point[1])

	return Rect2[T]{
		Min: Vec2[T]{minX, minY},
		Max: Vec2[T]{maxX, maxY},
	}
}

func (r Rect2[T]) Union(other Rect2[T]) Rect2[T] {
	return r.Extend(other.Min).Extend(other.Max)
}

func (r Rect2[T]) Center() Vec2[T] {
	return r.Min.Add(r.Max).Div(Vec2[T]{2, 2})
}

func (r Rect2[T]) Size() Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rect2[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rect2[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rect2[T]) Contains(point Vec2[T]) bool {
	return point[0] >= r.Min[0] && point[0] < r.Max[0] &&
		point[1] >= r.Min[1] && point[1] < r.Max[1]
}

func (r Rect2[T]) XYWH() (T, T, T, T) {
	x, y := r.Min.XY()
	w, h := r.Size().XY()
	return x, y, w, h
}
