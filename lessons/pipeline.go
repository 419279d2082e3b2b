package lessons

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

type PipelineCache = pulse.PipelineCache[PipelineConfig]

func NewPipelineCache(ctx *pulse.Context) *PipelineCache {
	return pulse.NewPipelineCache[PipelineConfig](ctx)
}

type vertexLayout uint8

const (
	// no vertex buffers, positions come from the shader
	vertexLayoutNone vertexLayout = iota

	// a single buffer of Vertex values
	vertexLayoutPositionColor
)

type bindings uint8

const (
	// the layout is derived from the shader
	bindingsAuto bindings = iota

	// a single UniformData buffer at group 0, binding 0
	bindingsUniforms
)

// PipelineConfig describes the render pipeline of a lesson. It is the key
// of the pipeline cache, lessons describing the same pipeline share it.
type PipelineConfig struct {
	Label        string
	ShaderSource string
	TargetFormat wgpu.TextureFormat
	VertexLayout vertexLayout
	Bindings     bindings
}

// positionColorPipeline is used by all lessons drawing Vertex values
// without any uniforms.
func positionColorPipeline(format wgpu.TextureFormat) PipelineConfig {
	return PipelineConfig{
		Label:        "PositionColor",
		ShaderSource: vertexShaderCode,
		TargetFormat: format,
		VertexLayout: vertexLayoutPositionColor,
	}
}

func uniformsPipeline(format wgpu.TextureFormat) PipelineConfig {
	return PipelineConfig{
		Label:        "Uniforms",
		ShaderSource: uniformsShaderCode,
		TargetFormat: format,
		VertexLayout: vertexLayoutPositionColor,
		Bindings:     bindingsUniforms,
	}
}

func (conf PipelineConfig) bindGroupLayouts() []wgpu.BindGroupLayoutDescriptor {
	switch conf.Bindings {
	case bindingsUniforms:
		return []wgpu.BindGroupLayoutDescriptor{
			{
				Label: conf.Label + ".BindGroupLayout",
				Entries: []wgpu.BindGroupLayoutEntry{
					{
						Binding:    0,
						Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
						Buffer: wgpu.BufferBindingLayout{
							Type:           wgpu.BufferBindingTypeUniform,
							MinBindingSize: uint64(unsafe.Sizeof(UniformData{})),
						},
					},
				},
			},
		}

	default:
		return nil
	}
}

// pipelineLayout creates the explicit layout of the pipeline, or returns
// nil if the layout is derived from the shader. The pipeline keeps what it
// needs, the caller releases the returned layout after creating the pipeline.
func (conf PipelineConfig) pipelineLayout(dev *wgpu.Device) (*wgpu.PipelineLayout, error) {
	descriptors := conf.bindGroupLayouts()
	if len(descriptors) == 0 {
		return nil, nil
	}

	var groups pulse.ReleaseStack
	defer groups.Release()

	var bindGroupLayouts []*wgpu.BindGroupLayout
	for idx := range descriptors {
		layout, err := dev.CreateBindGroupLayout(&descriptors[idx])
		if err != nil {
			return nil, fmt.Errorf("create bind group layout %d: %w", idx, err)
		}

		bindGroupLayouts = append(bindGroupLayouts, pulse.Push(&groups, layout))
	}

	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            conf.Label + ".PipelineLayout",
		BindGroupLayouts: bindGroupLayouts,
	})

	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	return layout, nil
}

func (conf PipelineConfig) vertexBuffers() []wgpu.VertexBufferLayout {
	switch conf.VertexLayout {
	case vertexLayoutPositionColor:
		return []wgpu.VertexBufferLayout{
			{
				ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{
						// position
						Format:         wgpu.VertexFormatFloat32x2,
						Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
						ShaderLocation: 0,
					},
					{
						// color
						Format:         wgpu.VertexFormatFloat32x3,
						Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
						ShaderLocation: 1,
					},
				},
			},
		}

	default:
		return nil
	}
}

func (conf PipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline",
		slog.String("label", conf.Label),
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := pulse.CreateShaderModule(dev, conf.Label+".Shader", conf.ShaderSource)
	if err != nil {
		return nil, err
	}

	// the pipeline keeps what it needs from the shader module
	defer shader.Release()

	layout, err := conf.pipelineLayout(dev)
	if err != nil {
		return nil, err
	}

	if layout != nil {
		defer layout.Release()
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  conf.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    conf.vertexBuffers(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &pulse.BlendStateTutorial,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: wgpu.IndexFormatUndefined,
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build pipeline %q: %w", conf.Label, err)
	}

	return pipeline, nil
}
