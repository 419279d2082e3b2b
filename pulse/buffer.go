package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// NewBufferWithData creates a buffer with the given usage that is large
// enough to hold data and copies data into it. CopyDst is always added to usage.
func NewBufferWithData(ctx *Context, label string, usage wgpu.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	data = PadTo4(data)

	buf, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: usage | wgpu.BufferUsageCopyDst,
		Size:  uint64(len(data)),
	})

	if err != nil {
		return nil, fmt.Errorf("create buffer %q: %w", label, err)
	}

	if len(data) > 0 {
		if err := ctx.WriteBuffer(buf, 0, data); err != nil {
			buf.Release()
			return nil, fmt.Errorf("write buffer %q: %w", label, err)
		}
	}

	return buf, nil
}

func NewVertexBuffer[T any](ctx *Context, label string, vertices []T) (*wgpu.Buffer, error) {
	return NewBufferWithData(ctx, label, wgpu.BufferUsageVertex, SliceBytes(vertices))
}

// NewIndexBuffer creates an index buffer for uint16 indices. The buffer is
// padded if the number of indices is odd.
func NewIndexBuffer(ctx *Context, label string, indices []uint16) (*wgpu.Buffer, error) {
	return NewBufferWithData(ctx, label, wgpu.BufferUsageIndex, SliceBytes(indices))
}

// NewUniformBuffer creates a uniform buffer initialized with value.
func NewUniformBuffer[T any](ctx *Context, label string, value *T) (*wgpu.Buffer, error) {
	return NewBufferWithData(ctx, label, wgpu.BufferUsageUniform, AsByteSlice(value))
}

// WriteUniform copies value into a uniform buffer.
func WriteUniform[T any](ctx *Context, buf *wgpu.Buffer, value *T) error {
	return ctx.WriteBuffer(buf, 0, PadTo4(AsByteSlice(value)))
}

// ReadBuffer copies size bytes of src into a staging buffer, maps it and
// returns a copy of its content. src must have the CopySrc usage.
// This blocks until the gpu has finished all submitted work.
func ReadBuffer(ctx *Context, src *wgpu.Buffer, size uint64) ([]byte, error) {
	if size%CopyBufferAlignment != 0 {
		return nil, fmt.Errorf("size %d is not a multiple of %d", size, CopyBufferAlignment)
	}

	staging, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Readback staging buffer",
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
		Size:  size,
	})

	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}

	defer staging.Release()

	encoder, err := ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Readback command encoder",
	})

	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	if err := encoder.CopyBufferToBuffer(src, 0, staging, 0, size); err != nil {
		return nil, fmt.Errorf("copy buffer: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmdBuffer.Release()

	ctx.Submit(cmdBuffer)

	var status wgpu.BufferMapAsyncStatus
	var mapped bool

	err = staging.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		slog.Debug("Buffer mapped", slog.Any("status", s))
		status = s
		mapped = true
	})

	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}

	// the callback fires during a poll of the device
	for !mapped {
		ctx.Poll(true)
	}

	if status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, errors.New("map staging buffer was not successful")
	}

	data := staging.GetMappedRange(0, uint(size))

	result := make([]byte, len(data))
	copy(result, data)

	if err := staging.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}

	return result, nil
}
