package lessons

import (
	"testing"
	"unsafe"

	"github.com/oliverbestmann/learnwebgpu/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.EqualValues(t, 20, unsafe.Sizeof(Vertex{}))
	assert.EqualValues(t, 0, unsafe.Offsetof(Vertex{}.Position))
	assert.EqualValues(t, 8, unsafe.Offsetof(Vertex{}.Color))
}

func TestGeometryValid(t *testing.T) {
	require.NoError(t, TwoTriangles.Validate())
	require.NoError(t, House.Validate())
}

func TestGeometryInvalid(t *testing.T) {
	assert.Error(t, Geometry{}.Validate())

	assert.Error(t, Geometry{Vertices: TwoTriangles.Vertices[:4]}.Validate())

	assert.Error(t, Geometry{
		Vertices: House.Vertices,
		Indices:  []uint16{0, 1},
	}.Validate())

	assert.Error(t, Geometry{
		Vertices: House.Vertices,
		Indices:  []uint16{0, 1, 5},
	}.Validate())
}

func TestHouseIndicesArePadded(t *testing.T) {
	raw := pulse.SliceBytes(House.Indices)
	assert.Len(t, raw, 18)

	padded := pulse.PadTo4(raw)
	assert.Len(t, padded, 20)
	assert.Equal(t, raw, padded[:18])
}

func TestUniformLayout(t *testing.T) {
	size := unsafe.Sizeof(UniformData{})
	assert.EqualValues(t, 32, size)
	assert.Zero(t, size%UniformAlignment)

	assert.EqualValues(t, 0, unsafe.Offsetof(UniformData{}.Color))
	assert.EqualValues(t, 16, unsafe.Offsetof(UniformData{}.Time))
}

func TestAnimatedColorInRange(t *testing.T) {
	lesson := NewUniforms()

	for step := range 200 {
		color := lesson.AnimatedColor(float32(step) * 0.05)

		for _, c := range color {
			assert.GreaterOrEqual(t, c, float32(0))
			assert.LessOrEqual(t, c, float32(1))
		}

		// the base and accent color are both opaque
		assert.InDelta(t, 1.0, color[3], 1e-6)

		// green only moves between the base and the accent color
		assert.GreaterOrEqual(t, color[1], float32(0.6)-1e-6)
	}
}

func TestAnimatedColorIsDeterministic(t *testing.T) {
	assert.Equal(t,
		NewUniforms().AnimatedColor(1.5),
		NewUniforms().AnimatedColor(1.5),
	)
}
