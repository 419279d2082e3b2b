// Package lessons contains the steps of the tutorial. Every lesson adds
// one concept on top of the previous one, starting with a render pass
// that only clears the screen up to uniform buffers and bind groups.
package lessons

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

var ErrUnknownLesson = errors.New("unknown lesson")

// Env holds everything a lesson needs to create its gpu resources.
type Env struct {
	Context *pulse.Context

	// Format of the surface the lesson renders to
	Format wgpu.TextureFormat

	Pipelines *PipelineCache
}

// FrameState describes the frame that is about to be rendered.
type FrameState struct {
	// seconds since the application started, excluding pauses
	Time float32

	// seconds since the previous frame
	Delta float32

	Frame uint64

	Width  uint32
	Height uint32
}

type Lesson interface {
	Name() string

	// Initialize creates the gpu resources of the lesson.
	Initialize(env Env) error

	// Update is called once per frame before the render pass is encoded.
	Update(frame FrameState) error

	// Draw records the draw calls of the lesson into the pass.
	Draw(pass *wgpu.RenderPassEncoder) error

	ClearColor() pulse.Color

	// Release releases all resources created in Initialize. The lesson
	// can be initialized again afterwards.
	Release()
}

// All returns a new instance of every lesson in tutorial order.
func All() []Lesson {
	return []Lesson{
		NewClear(),
		NewTriangle(),
		NewVertexBuffer(),
		NewIndexBuffer(),
		NewUniforms(),
		NewBuffers(),
	}
}

func Names() []string {
	var names []string
	for _, lesson := range All() {
		names = append(names, lesson.Name())
	}

	return names
}

func ByName(name string) (Lesson, error) {
	for _, lesson := range All() {
		if lesson.Name() == name {
			return lesson, nil
		}
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownLesson, name)
}

// ByIndex returns the lesson at the zero based index.
func ByIndex(idx int) (Lesson, error) {
	all := All()
	if idx < 0 || idx >= len(all) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownLesson, idx)
	}

	return all[idx], nil
}

// IndexOf returns the position of the named lesson, or -1.
func IndexOf(name string) int {
	for idx, lessonName := range Names() {
		if lessonName == name {
			return idx
		}
	}

	return -1
}

var clearColorDark = pulse.ColorLinearRGBA(0.05, 0.05, 0.05, 1.0)
