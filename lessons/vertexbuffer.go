package lessons

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

//go:embed shaders/vertex.wgsl
var vertexShaderCode string

// VertexBuffer reads position and color of each vertex from a vertex buffer.
type VertexBuffer struct {
	geometry Geometry

	pipeline    *wgpu.RenderPipeline
	bufVertices *wgpu.Buffer
}

func NewVertexBuffer() *VertexBuffer {
	return &VertexBuffer{geometry: TwoTriangles}
}

func (l *VertexBuffer) Name() string {
	return "vertex-buffer"
}

func (l *VertexBuffer) Initialize(env Env) error {
	if err := l.geometry.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}

	pc, err := env.Pipelines.Get(positionColorPipeline(env.Format))

	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	bufVertices, err := pulse.NewVertexBuffer(env.Context, "VertexBuffer.Vertices", l.geometry.Vertices)
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}

	l.pipeline = pc.Pipeline
	l.bufVertices = bufVertices

	return nil
}

func (l *VertexBuffer) Update(frame FrameState) error {
	return nil
}

func (l *VertexBuffer) Draw(pass *wgpu.RenderPassEncoder) error {
	pass.SetPipeline(l.pipeline)
	pass.SetVertexBuffer(0, l.bufVertices, 0, wgpu.WholeSize)
	pass.Draw(uint32(len(l.geometry.Vertices)), 1, 0, 0)

	return nil
}

func (l *VertexBuffer) ClearColor() pulse.Color {
	return clearColorDark
}

func (l *VertexBuffer) Release() {
	if l.bufVertices != nil {
		l.bufVertices.Release()
		l.bufVertices = nil
	}

	l.pipeline = nil
}
