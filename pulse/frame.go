package pulse

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrFrameSkipped is returned if no surface texture could be acquired
// for the current frame, e.g. because the surface is outdated.
var ErrFrameSkipped = errors.New("frame skipped")

// Frame holds the surface texture of the frame currently being rendered.
type Frame struct {
	surface *wgpu.Surface

	Texture *wgpu.Texture
	View    *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	presented bool
}

// Render encodes a single render pass that clears the frame to clearColor
// and then calls draw to record the draw calls. The resulting command
// buffer is submitted to the queue.
func (f *Frame) Render(ctx *Context, clearColor Color, draw func(pass *wgpu.RenderPassEncoder) error) error {
	encoder, err := ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Frame command encoder",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame render pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          f.View,
				ResolveTarget: nil,
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       wgpu.StoreOpStore,
				ClearValue:    clearColor.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	var drawErr error
	if draw != nil {
		drawErr = draw(pass)
	}

	if err := endPass(pass, drawErr); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(&wgpu.CommandBufferDescriptor{
		Label: "Frame command buffer",
	})

	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmdBuffer.Release()

	ctx.Submit(cmdBuffer)

	return nil
}

type passEnder interface {
	End() error
}

// endPass ends the pass, even if recording the draw calls failed.
// In that case the draw error is returned together with the error of End.
func endPass(pass passEnder, drawErr error) error {
	endErr := pass.End()
	if endErr != nil {
		endErr = fmt.Errorf("end render pass: %w", endErr)
	}

	if drawErr != nil {
		return errors.Join(fmt.Errorf("draw: %w", drawErr), endErr)
	}

	return endErr
}

// Present shows the frame on the surface.
func (f *Frame) Present() {
	f.surface.Present()
	f.presented = true
}

// Release releases the view of the surface texture. The texture itself is
// owned by the surface after a successful Present and is only released
// here if the frame was never presented.
func (f *Frame) Release() {
	if f.View != nil {
		f.View.Release()
		f.View = nil
	}

	if f.Texture != nil {
		if !f.presented {
			f.Texture.Release()
		}

		f.Texture = nil
	}
}
