package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/glm"
	"github.com/stretchr/testify/assert"
)

func TestColorDefaultIsWhite(t *testing.T) {
	var color Color
	assert.Equal(t, ColorWhite, color)
	assert.Equal(t, glm.Vec4f{1, 1, 1, 1}, color.ToVec())
}

func TestColorToWGPU(t *testing.T) {
	color := ColorLinearRGBA(0.5, 0.25, 0, 1)
	assert.Equal(t, wgpu.Color{R: 0.5, G: 0.25, B: 0, A: 1}, color.ToWGPU())
}

func TestColorWithAlpha(t *testing.T) {
	color := ColorBlack.WithAlpha(0.5)
	assert.Equal(t, float32(0.5), color.Alpha())
}

func TestColorSRGBA(t *testing.T) {
	r, g, b, a := ColorSRGBA(1, 0, 0.5, 1).Components()
	assert.InDelta(t, 1, r, 1e-6)
	assert.InDelta(t, 0, g, 1e-6)
	assert.InDelta(t, 0.214, b, 1e-3)
	assert.Equal(t, float32(1), a)
}
