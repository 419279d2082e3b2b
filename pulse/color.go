package pulse

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/glm"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is a straight alpha rgba value in linear color space, as used for
// clear values and uniforms. The zero value is opaque white.
type Color struct {
	// components are stored minus one
	r1, g1, b1, a1 float32
}

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{r1: r - 1, g1: g - 1, b1: b - 1, a1: a - 1}
}

// ColorSRGBA converts sRGB encoded components, e.g. picked in an image
// editor, into linear space. Alpha is taken as is.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b), a)
}

func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// ToVec returns the components for a vec4<f32> in a uniform buffer.
func (c Color) ToVec() glm.Vec4f {
	r, g, b, a := c.Components()
	return glm.Vec4f{r, g, b, a}
}

// ToWGPU returns the color as the clear value of a render pass attachment.
func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.Components()
	return wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

func (c Color) Alpha() float32 {
	return c.a1 + 1
}

func (c Color) WithAlpha(alpha float32) Color {
	c.a1 = alpha - 1
	return c
}

func srgbToLinear(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	if math.Abs(x) <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(math.Copysign(math.Pow((math.Abs(x)+0.055)/1.055, 2.4), x))
}
