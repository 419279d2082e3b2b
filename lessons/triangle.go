package lessons

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

//go:embed shaders/triangle.wgsl
var triangleShaderCode string

// Triangle draws a single triangle. The vertex positions are
// hard coded in the shader, no vertex buffer is needed.
type Triangle struct {
	pipeline *wgpu.RenderPipeline
}

func NewTriangle() *Triangle {
	return &Triangle{}
}

func (l *Triangle) Name() string {
	return "triangle"
}

func (l *Triangle) Initialize(env Env) error {
	pc, err := env.Pipelines.Get(PipelineConfig{
		Label:        "Triangle",
		ShaderSource: triangleShaderCode,
		TargetFormat: env.Format,
		VertexLayout: vertexLayoutNone,
	})

	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	l.pipeline = pc.Pipeline

	return nil
}

func (l *Triangle) Update(frame FrameState) error {
	return nil
}

func (l *Triangle) Draw(pass *wgpu.RenderPassEncoder) error {
	pass.SetPipeline(l.pipeline)

	// 1 instance of 3 vertices
	pass.Draw(3, 1, 0, 0)

	return nil
}

func (l *Triangle) ClearColor() pulse.Color {
	return pulse.ColorLinearRGBA(0.9, 0.1, 0.2, 1.0)
}

// Release forgets the pipeline, it is owned by the pipeline cache.
func (l *Triangle) Release() {
	l.pipeline = nil
}
