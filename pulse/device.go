package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrDeviceLost is returned once the device was lost, e.g. because the
// driver crashed or the gpu was removed.
var ErrDeviceLost = errors.New("device lost")

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	// glfw and the native webgpu library both want to be called from the main thread
	runtime.LockOSThread()

	if level, ok := ParseLogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

// ParseLogLevel maps the names OFF, ERROR, WARN, INFO, DEBUG and TRACE
// to the native wgpu log level. The name is case insensitive.
func ParseLogLevel(name string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(name) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	default:
		return wgpu.LogLevelOff, false
	}
}

type ContextOptions struct {
	ForceFallbackAdapter bool
	PowerPreference      wgpu.PowerPreference

	// Label of the device, defaults to "My Device"
	DeviceLabel string
}

func (opts ContextOptions) withDefaults() ContextOptions {
	if opts.DeviceLabel == "" {
		opts.DeviceLabel = "My Device"
	}

	opts.ForceFallbackAdapter = opts.ForceFallbackAdapter || forceFallbackAdapter

	return opts
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Queue, Surface and active Adapter.
// The Surface is nil for a headless Context.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	lost atomic.Bool
}

// New creates a Context that renders to the surface described by sd.
func New(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (*Context, error) {
	return newContext(sd, opts)
}

// NewHeadless creates a Context without a surface. It can only be used
// for work that does not present anything, e.g. buffer transfers.
func NewHeadless(opts ContextOptions) (*Context, error) {
	return newContext(nil, opts)
}

func newContext(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (st *Context, err error) {
	opts = opts.withDefaults()

	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)

	// the instance is only needed to get hold of an adapter
	instanceGuard := NewReleaseGuard(instance)
	defer instanceGuard.Release()

	if sd != nil {
		// create a Surface based on the window
		st.Surface = instance.CreateSurface(sd)
	}

	slog.Info("Requesting adapter...",
		slog.Bool("forceFallback", opts.ForceFallbackAdapter),
		slog.Bool("surface", st.Surface != nil),
	)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		PowerPreference:      opts.PowerPreference,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	instanceGuard.Release()

	info := st.Adapter.GetInfo()
	slog.Info("Got adapter",
		slog.String("name", info.Name),
		slog.String("backend", info.BackendType.String()),
	)

	slog.Info("Requesting device...", slog.String("label", opts.DeviceLabel))

	// we do not require any specific feature or limit
	limits := wgpu.DefaultLimits()

	st.Device, err = st.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          opts.DeviceLabel,
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},

		// called asynchronously, never reported as the error of a call
		DeviceLostCallback: st.deviceLost,
	})

	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	slog.Info("Got device", slog.String("label", opts.DeviceLabel))

	st.Queue = st.Device.GetQueue()

	return st, nil
}

// Poll processes pending device callbacks. If wait is true,
// Poll blocks until all submitted work has finished.
func (d *Context) Poll(wait bool) {
	d.Device.Poll(wait, nil)
}

// deviceLost is called by wgpu when the device is gone. Releasing
// the device ourselves reports the reason destroyed.
func (d *Context) deviceLost(reason wgpu.DeviceLostReason, message string) {
	if reason == wgpu.DeviceLostReasonDestroyed {
		slog.Debug("Device destroyed", slog.String("message", message))
		return
	}

	slog.Warn("Device lost",
		slog.String("reason", reason.String()),
		slog.String("message", message),
	)

	d.lost.Store(true)
}

// Lost returns true if the device was lost. A lost device does
// not recover, the Context must be released.
func (d *Context) Lost() bool {
	return d.lost.Load()
}

// Release releases all handles in reverse order of creation.
// Calling Release more than once is fine.
func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
