package lessons

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

// Buffers copies data between two gpu buffers and reads it back
// to the cpu during initialization. Rendering only clears the screen.
type Buffers struct {
	// data read back during the last Initialize
	Result []byte
}

func NewBuffers() *Buffers {
	return &Buffers{}
}

func (l *Buffers) Name() string {
	return "buffers"
}

func (l *Buffers) Initialize(env Env) error {
	result, err := PlayWithBuffers(env.Context)
	if err != nil {
		return err
	}

	l.Result = result
	return nil
}

// PlayWithBuffers uploads the numbers 0 to 15 into a gpu buffer, copies
// them into a second buffer on the gpu and maps that one for reading.
func PlayWithBuffers(ctx *pulse.Context) ([]byte, error) {
	numbers := make([]byte, 16)
	for idx := range numbers {
		numbers[idx] = byte(idx)
	}

	// ReadBuffer creates the second buffer with the MapRead usage
	buf, err := pulse.NewBufferWithData(ctx, "Some GPU-side data buffer", wgpu.BufferUsageCopySrc, numbers)
	if err != nil {
		return nil, fmt.Errorf("create input buffer: %w", err)
	}

	defer buf.Release()

	result, err := pulse.ReadBuffer(ctx, buf, uint64(len(numbers)))
	if err != nil {
		return nil, fmt.Errorf("read back buffer: %w", err)
	}

	slog.Info("Read buffer from gpu", slog.Any("data", bytesAsInts(result)))

	return result, nil
}

func bytesAsInts(data []byte) []int {
	ints := make([]int, len(data))
	for idx, value := range data {
		ints[idx] = int(value)
	}

	return ints
}

func (l *Buffers) Update(frame FrameState) error {
	return nil
}

func (l *Buffers) Draw(pass *wgpu.RenderPassEncoder) error {
	return nil
}

func (l *Buffers) ClearColor() pulse.Color {
	return clearColorDark
}

func (l *Buffers) Release() {
	l.Result = nil
}
