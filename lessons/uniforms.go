package lessons

import (
	_ "embed"
	"fmt"
	"structs"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/learnwebgpu/glm"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

//go:embed shaders/uniforms.wgsl
var uniformsShaderCode string

// UniformAlignment is the alignment of a uniform struct in memory.
// Its size must be a multiple of it.
const UniformAlignment = 16

// UniformData is the host side copy of the Uniforms struct in the shader.
type UniformData struct {
	_ structs.HostLayout

	Color glm.Vec4f
	Time  float32

	// fill up to the alignment of Color
	_ [3]float32
}

var uniformColorBase = pulse.ColorLinearRGBA(0.0, 1.0, 0.4, 1.0).ToVec()
var uniformColorAccent = pulse.ColorLinearRGBA(1.0, 0.6, 0.1, 1.0).ToVec()

// Uniforms moves the geometry and changes its color over time
// using a uniform buffer bound to the shader via a bind group.
type Uniforms struct {
	geometry Geometry
	noise    *fastnoiselite.FastNoiseLite

	ctx       *pulse.Context
	resources pulse.ReleaseStack

	pipeline    *wgpu.RenderPipeline
	bindGroup   *wgpu.BindGroup
	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
	bufUniforms *wgpu.Buffer

	uniforms UniformData
}

func NewUniforms() *Uniforms {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm

	return &Uniforms{
		geometry: House,
		noise:    noise,
	}
}

func (l *Uniforms) Name() string {
	return "uniforms"
}

func (l *Uniforms) Initialize(env Env) (err error) {
	if err := l.geometry.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}

	defer func() {
		if err != nil {
			l.Release()
		}
	}()

	l.ctx = env.Context
	l.uniforms = UniformData{Color: uniformColorBase}

	pc, err := env.Pipelines.Get(uniformsPipeline(env.Format))
	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	l.pipeline = pc.Pipeline

	l.bufVertices, err = pulse.NewVertexBuffer(env.Context, "Uniforms.Vertices", l.geometry.Vertices)
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}

	pulse.Push(&l.resources, l.bufVertices)

	l.bufIndices, err = pulse.NewIndexBuffer(env.Context, "Uniforms.Indices", l.geometry.Indices)
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}

	pulse.Push(&l.resources, l.bufIndices)

	l.bufUniforms, err = pulse.NewUniformBuffer(env.Context, "Uniforms.Uniforms", &l.uniforms)
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}

	pulse.Push(&l.resources, l.bufUniforms)

	// the layout is owned by the pipeline cache
	bindGroupLayout := pc.GetBindGroupLayout(0)

	l.bindGroup, err = env.Context.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Uniforms.BindGroup",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  l.bufUniforms,
				Offset:  0,
				Size:    uint64(unsafe.Sizeof(UniformData{})),
			},
		},
	})

	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	pulse.Push(&l.resources, l.bindGroup)

	return nil
}

// AnimatedColor returns the uniform color at the given time. The color
// drifts between two colors following a noise function, slowly pulsing
// back towards the base color.
func (l *Uniforms) AnimatedColor(time float32) glm.Vec4f {
	n := float32(l.noise.GetNoise2D(fastnoiselite.FNLfloat(time*8), 0))

	// noise is in [-1, 1]
	wave := 0.75 + 0.25*glm.Sin(glm.Rad(time))
	t := glm.Clamp((n+1)/2*wave, 0, 1)

	return uniformColorBase.Lerp(uniformColorAccent, t)
}

func (l *Uniforms) Update(frame FrameState) error {
	l.uniforms.Time = frame.Time
	l.uniforms.Color = l.AnimatedColor(frame.Time)

	if err := pulse.WriteUniform(l.ctx, l.bufUniforms, &l.uniforms); err != nil {
		return fmt.Errorf("write uniforms: %w", err)
	}

	return nil
}

func (l *Uniforms) Draw(pass *wgpu.RenderPassEncoder) error {
	pass.SetPipeline(l.pipeline)
	pass.SetBindGroup(0, l.bindGroup, nil)
	pass.SetVertexBuffer(0, l.bufVertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(l.bufIndices, wgpu.IndexFormatUint16, 0, uint64(2*len(l.geometry.Indices)))
	pass.DrawIndexed(uint32(len(l.geometry.Indices)), 1, 0, 0, 0)

	return nil
}

func (l *Uniforms) ClearColor() pulse.Color {
	return clearColorDark
}

func (l *Uniforms) Release() {
	l.resources.Release()

	l.pipeline = nil
	l.bindGroup = nil
	l.bufVertices = nil
	l.bufIndices = nil
	l.bufUniforms = nil
	l.ctx = nil
}
