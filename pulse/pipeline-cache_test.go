package pulse

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSpecialize = errors.New("specialize failed")

type countingConfig struct {
	id     int
	builds *int
}

func (c countingConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	*c.builds++

	if c.id < 0 {
		return nil, errSpecialize
	}

	return &wgpu.RenderPipeline{}, nil
}

type releaseRecorder struct {
	released []*wgpu.RenderPipeline
}

func (r *releaseRecorder) release(pipe CachedPipeline) {
	r.released = append(r.released, pipe.Pipeline)
}

func TestPipelineCacheHit(t *testing.T) {
	var builds int
	var recorder releaseRecorder

	cache := newPipelineCache[countingConfig](nil, 4, recorder.release)

	first, err := cache.Get(countingConfig{id: 1, builds: &builds})
	require.NoError(t, err)

	second, err := cache.Get(countingConfig{id: 1, builds: &builds})
	require.NoError(t, err)

	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, cache.Len())
	assert.Same(t, first.Pipeline, second.Pipeline)
	assert.Empty(t, recorder.released)
}

func TestPipelineCacheEviction(t *testing.T) {
	var builds int
	var recorder releaseRecorder

	cache := newPipelineCache[countingConfig](nil, 2, recorder.release)

	first, err := cache.Get(countingConfig{id: 1, builds: &builds})
	require.NoError(t, err)

	_, err = cache.Get(countingConfig{id: 2, builds: &builds})
	require.NoError(t, err)

	_, err = cache.Get(countingConfig{id: 3, builds: &builds})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	require.Len(t, recorder.released, 1)
	assert.Same(t, first.Pipeline, recorder.released[0])

	// the evicted pipeline is built again
	_, err = cache.Get(countingConfig{id: 1, builds: &builds})
	require.NoError(t, err)
	assert.Equal(t, 4, builds)
}

func TestPipelineCachePurge(t *testing.T) {
	var builds int
	var recorder releaseRecorder

	cache := newPipelineCache[countingConfig](nil, 4, recorder.release)

	for id := range 3 {
		_, err := cache.Get(countingConfig{id: id, builds: &builds})
		require.NoError(t, err)
	}

	cache.Purge()

	assert.Zero(t, cache.Len())
	assert.Len(t, recorder.released, 3)
}

func TestPipelineCacheDoesNotCacheErrors(t *testing.T) {
	var builds int
	var recorder releaseRecorder

	cache := newPipelineCache[countingConfig](nil, 4, recorder.release)

	_, err := cache.Get(countingConfig{id: -1, builds: &builds})
	assert.ErrorIs(t, err, errSpecialize)

	_, err = cache.Get(countingConfig{id: -1, builds: &builds})
	assert.ErrorIs(t, err, errSpecialize)

	assert.Equal(t, 2, builds)
	assert.Zero(t, cache.Len())
}
