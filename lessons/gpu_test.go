package lessons

import (
	"os"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headlessEnv(t *testing.T) Env {
	t.Helper()

	if os.Getenv("LEARNWEBGPU_GPU_TESTS") != "1" {
		t.Skip("Need a gpu, set LEARNWEBGPU_GPU_TESTS=1")
	}

	ctx, err := pulse.NewHeadless(pulse.ContextOptions{ForceFallbackAdapter: true})
	require.NoError(t, err)
	t.Cleanup(ctx.Release)

	pipelines := NewPipelineCache(ctx)
	t.Cleanup(pipelines.Purge)

	return Env{
		Context:   ctx,
		Format:    wgpu.TextureFormatBGRA8Unorm,
		Pipelines: pipelines,
	}
}

func TestLessonsInitializeAgainAfterRelease(t *testing.T) {
	env := headlessEnv(t)

	for _, lesson := range All() {
		t.Run(lesson.Name(), func(t *testing.T) {
			require.NoError(t, lesson.Initialize(env))
			require.NoError(t, lesson.Update(FrameState{Time: 1, Delta: 0.016, Frame: 1}))

			pipelines := env.Pipelines.Len()
			lesson.Release()

			require.NoError(t, lesson.Initialize(env))
			require.NoError(t, lesson.Update(FrameState{Time: 2, Delta: 0.016, Frame: 2}))

			// the second Initialize reuses the cached pipeline
			assert.Equal(t, pipelines, env.Pipelines.Len())

			lesson.Release()
		})
	}
}

func TestVertexAndIndexBufferSharePipeline(t *testing.T) {
	env := headlessEnv(t)

	vertexBuffer := NewVertexBuffer()
	require.NoError(t, vertexBuffer.Initialize(env))
	defer vertexBuffer.Release()

	indexBuffer := NewIndexBuffer()
	require.NoError(t, indexBuffer.Initialize(env))
	defer indexBuffer.Release()

	assert.Equal(t, 1, env.Pipelines.Len())
}

func TestPlayWithBuffers(t *testing.T) {
	env := headlessEnv(t)

	result, err := PlayWithBuffers(env.Context)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, result)
}
