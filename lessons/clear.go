package lessons

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

// Clear does not draw anything, the render pass clears the screen.
type Clear struct{}

func NewClear() *Clear {
	return &Clear{}
}

func (l *Clear) Name() string {
	return "clear"
}

func (l *Clear) Initialize(env Env) error {
	return nil
}

func (l *Clear) Update(frame FrameState) error {
	return nil
}

func (l *Clear) Draw(pass *wgpu.RenderPassEncoder) error {
	return nil
}

func (l *Clear) ClearColor() pulse.Color {
	return pulse.ColorLinearRGBA(0.9, 0.1, 0.2, 1.0)
}

func (l *Clear) Release() {}
