package glm

// Vec2 and Vec3 are only used as vertex attributes, their
// memory layout matches vec2<f32> and vec3<f32> in WGSL.
type Vec2[T numeric] [2]T
type Vec3[T numeric] [3]T

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs[0] + rhs[0], lhs[1] + rhs[1], lhs[2] + rhs[2], lhs[3] + rhs[3]}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs[0] - rhs[0], lhs[1] - rhs[1], lhs[2] - rhs[2], lhs[3] - rhs[3]}
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{lhs[0] * s, lhs[1] * s, lhs[2] * s, lhs[3] * s}
}

// Lerp interpolates linearly between lhs (t=0) and rhs (t=1).
func (lhs Vec4[T]) Lerp(rhs Vec4[T], t T) Vec4[T] {
	return lhs.Add(rhs.Sub(lhs).MulScalar(t))
}
