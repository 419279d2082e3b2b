package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

type numeric interface {
	float | ~uint32
}

// Rad is an angle in radians.
type Rad float32

func DegToRad[T numeric](deg T) Rad {
	return Rad(float64(deg) / 180 * 3.141592653589793)
}

func Clamp[T numeric](value, lo, hi T) T {
	return min(max(value, lo), hi)
}
