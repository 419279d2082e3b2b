package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var ErrZeroSizedSurface = errors.New("surface has zero size")

type ViewOptions struct {
	// defaults to wgpu.PresentModeFifo, which is supported everywhere
	PresentMode wgpu.PresentMode
}

// ParsePresentMode maps "fifo", "immediate" and "mailbox" to the
// corresponding present mode. The empty string maps to fifo.
func ParsePresentMode(name string) (wgpu.PresentMode, error) {
	switch strings.ToLower(name) {
	case "", "fifo":
		return wgpu.PresentModeFifo, nil
	case "immediate":
		return wgpu.PresentModeImmediate, nil
	case "mailbox":
		return wgpu.PresentModeMailbox, nil
	default:
		return wgpu.PresentModeFifo, fmt.Errorf("unknown present mode %q", name)
	}
}

// View owns the configuration of the surface of a Context.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
	configured    bool
}

func NewView(ctx *Context, opts ViewOptions) (*View, error) {
	if ctx.Surface == nil {
		return nil, errors.New("context has no surface")
	}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface is not supported by the adapter")
	}

	presentMode := opts.PresentMode
	if presentMode == 0 {
		presentMode = wgpu.PresentModeFifo
	}

	if !supportsPresentMode(caps.PresentModes, presentMode) {
		slog.Warn("Present mode not supported, falling back to fifo",
			slog.Any("presentMode", presentMode))

		presentMode = wgpu.PresentModeFifo
	}

	st := &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage: wgpu.TextureUsageRenderAttachment,

			// the first format is the preferred one
			Format:      caps.Formats[0],
			PresentMode: presentMode,
			AlphaMode:   caps.AlphaModes[0],
		},
	}

	return st, nil
}

func supportsPresentMode(modes []wgpu.PresentMode, mode wgpu.PresentMode) bool {
	for _, supported := range modes {
		if supported == mode {
			return true
		}
	}

	return false
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Width() uint32 {
	return vs.surfaceConfig.Width
}

func (vs *View) Height() uint32 {
	return vs.surfaceConfig.Height
}

// Configure (re)configures the surface for the given size.
func (vs *View) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return ErrZeroSizedSurface
	}

	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Any("format", vs.surfaceConfig.Format),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)
	vs.configured = true

	return nil
}

// AcquireFrame gets the next texture of the surface. The surface
// must have been configured before.
func (vs *View) AcquireFrame() (*Frame, error) {
	if !vs.configured {
		return nil, errors.New("surface not configured")
	}

	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	}

	view, err := texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           "Surface texture view",
		Format:          texture.GetFormat(),
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectAll,
	})

	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface texture view: %w", err)
	}

	frame := &Frame{
		surface: vs.Surface,
		Texture: texture,
		View:    view,
		Format:  texture.GetFormat(),
		Width:   texture.GetWidth(),
		Height:  texture.GetHeight(),
	}

	return frame, nil
}
