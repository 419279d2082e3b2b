package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// ShaderInfo describes the entry points found in a WGSL module.
type ShaderInfo struct {
	Vertex   []string
	Fragment []string
	Compute  []string
}

// HasVertex returns true if the module has a vertex entry point with the given name.
func (info *ShaderInfo) HasVertex(name string) bool {
	return slices.Contains(info.Vertex, name)
}

// HasFragment returns true if the module has a fragment entry point with the given name.
func (info *ShaderInfo) HasFragment(name string) bool {
	return slices.Contains(info.Fragment, name)
}

// CheckWGSL parses the WGSL source on the cpu. This catches syntax and
// type errors with a readable message before the source reaches the device.
func CheckWGSL(source string) (*ShaderInfo, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse wgsl: %w", err)
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lower wgsl: %w", err)
	}

	issues, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("validate wgsl: %w", err)
	}

	// the device has the final word on validity
	for _, issue := range issues {
		slog.Warn("Shader validation issue", slog.String("message", issue.Error()))
	}

	info := &ShaderInfo{}
	for _, entryPoint := range module.EntryPoints {
		switch entryPoint.Stage {
		case ir.StageVertex:
			info.Vertex = append(info.Vertex, entryPoint.Name)
		case ir.StageFragment:
			info.Fragment = append(info.Fragment, entryPoint.Name)
		case ir.StageCompute:
			info.Compute = append(info.Compute, entryPoint.Name)
		}
	}

	return info, nil
}

// CreateShaderModule checks the given WGSL source and compiles it into a shader module.
func CreateShaderModule(dev *wgpu.Device, label string, source string) (*wgpu.ShaderModule, error) {
	if _, err := CheckWGSL(source); err != nil {
		return nil, fmt.Errorf("check shader %q: %w", label, err)
	}

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: source},
	})

	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", label, err)
	}

	return shader, nil
}
