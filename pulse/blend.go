package pulse

import "github.com/cogentcore/webgpu/wgpu"

// BlendStateTutorial blends the color using the source alpha and
// keeps the alpha value of the target.
var BlendStateTutorial = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorZero,
		DstFactor: wgpu.BlendFactorOne,
		Operation: wgpu.BlendOperationAdd,
	},
}

var BlendStateReplace = wgpu.BlendStateReplace
