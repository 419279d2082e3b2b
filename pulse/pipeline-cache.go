package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hashicorp/golang-lru/v2"
)

type CachedPipeline struct {
	Pipeline   *wgpu.RenderPipeline
	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// GetBindGroupLayout returns the layout of the bind group at idx. The layout is owned
// by the cache and must not be released.
func (pc *CachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	bindGroup, ok := pc.bindGroups.Get(idx)
	if ok {
		return bindGroup
	}

	bindGroup = pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroups.Add(idx, bindGroup)

	return bindGroup
}

type PipelineConfig interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// PipelineCache keeps recently used pipelines alive. Pipelines
// are released when evicted from the cache.
type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline]

	// releases an evicted pipeline
	release func(pipe CachedPipeline)
}

const pipelineCacheSize = 16

func NewPipelineCache[C PipelineConfig](ctx *Context) *PipelineCache[C] {
	return newPipelineCache[C](ctx.Device, pipelineCacheSize, releasePipeline)
}

func newPipelineCache[C PipelineConfig](device *wgpu.Device, size int, release func(CachedPipeline)) *PipelineCache[C] {
	p := &PipelineCache[C]{device: device, release: release}

	p.cache, _ = lru.NewWithEvict[C, CachedPipeline](size, func(_ C, pipe CachedPipeline) {
		slog.Debug("Release evicted pipeline")
		p.release(pipe)
	})

	return p
}

func (p *PipelineCache[C]) Get(conf C) (CachedPipeline, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	bindGroupsCache, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](16, releaseBindGroupLayoutOnEviction)

	pc := CachedPipeline{Pipeline: pipeline, bindGroups: bindGroupsCache}
	p.cache.Add(conf, pc)

	return pc, nil
}

func (p *PipelineCache[C]) Len() int {
	return p.cache.Len()
}

// Purge releases all cached pipelines.
func (p *PipelineCache[C]) Purge() {
	p.cache.Purge()
}

func releasePipeline(pipe CachedPipeline) {
	pipe.bindGroups.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, ev *wgpu.BindGroupLayout) {
	ev.Release()
}
