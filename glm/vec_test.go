package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec4Arithmetic(t *testing.T) {
	a := Vec4f{1, 2, 3, 4}
	b := Vec4f{5, 6, 7, 8}

	assert.Equal(t, Vec4f{6, 8, 10, 12}, a.Add(b))
	assert.Equal(t, Vec4f{4, 4, 4, 4}, b.Sub(a))
	assert.Equal(t, Vec4f{2, 4, 6, 8}, a.MulScalar(2))
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4f{0, 0, 0, 1}
	b := Vec4f{1, 2, 4, 1}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec4f{0.5, 1, 2, 1}, a.Lerp(b, 0.5))
}

func TestSinCos(t *testing.T) {
	assert.InDelta(t, 0, Sin(0), 1e-6)
	assert.InDelta(t, 1, Cos(0), 1e-6)
	assert.InDelta(t, 1, Sin(DegToRad[float32](90)), 1e-5)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](3, 0, 1))
	assert.Equal(t, float32(0), Clamp[float32](-2, 0, 1))
	assert.Equal(t, uint32(5), Clamp[uint32](5, 1, 10))
}
