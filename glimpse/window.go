package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// the tutorial keeps the window at a fixed size unless asked otherwise
	Resizable bool

	// write a cpu profile while the window is open
	Profile bool
}

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	ShouldClose() bool

	// Close marks the window as closing. The main loop exits
	// before rendering the next frame.
	Close()

	// PollInput processes pending window events and returns
	// the input state for the next frame.
	PollInput() InputState

	// Run calls frame until the window should close or frame returns an error.
	Run(frame func() error) error

	Terminate()
}
