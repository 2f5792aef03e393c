package vec

import "golang.org/x/exp/constraints"

// Numeric covers the element types a vector can hold.
type Numeric interface {
	constraints.Integer | constraints.Float
}
