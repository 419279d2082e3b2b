package lessons

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

// IndexBuffer shares vertices between triangles using an index buffer.
type IndexBuffer struct {
	geometry Geometry

	pipeline  *wgpu.RenderPipeline
	resources pulse.ReleaseStack

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
}

func NewIndexBuffer() *IndexBuffer {
	return &IndexBuffer{geometry: House}
}

func (l *IndexBuffer) Name() string {
	return "index-buffer"
}

func (l *IndexBuffer) Initialize(env Env) (err error) {
	if err := l.geometry.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}

	defer func() {
		if err != nil {
			l.Release()
		}
	}()

	pc, err := env.Pipelines.Get(positionColorPipeline(env.Format))

	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	l.pipeline = pc.Pipeline

	l.bufVertices, err = pulse.NewVertexBuffer(env.Context, "IndexBuffer.Vertices", l.geometry.Vertices)
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}

	pulse.Push(&l.resources, l.bufVertices)

	l.bufIndices, err = pulse.NewIndexBuffer(env.Context, "IndexBuffer.Indices", l.geometry.Indices)
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}

	pulse.Push(&l.resources, l.bufIndices)

	return nil
}

func (l *IndexBuffer) Update(frame FrameState) error {
	return nil
}

func (l *IndexBuffer) Draw(pass *wgpu.RenderPassEncoder) error {
	pass.SetPipeline(l.pipeline)
	pass.SetVertexBuffer(0, l.bufVertices, 0, wgpu.WholeSize)

	// the buffer might be padded, bind exactly the bytes of the indices
	pass.SetIndexBuffer(l.bufIndices, wgpu.IndexFormatUint16, 0, uint64(2*len(l.geometry.Indices)))
	pass.DrawIndexed(uint32(len(l.geometry.Indices)), 1, 0, 0, 0)

	return nil
}

func (l *IndexBuffer) ClearColor() pulse.Color {
	return clearColorDark
}

func (l *IndexBuffer) Release() {
	l.resources.Release()
	l.bufVertices = nil
	l.bufIndices = nil
	l.pipeline = nil
}
