//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	input InputState

	terminated bool
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// we render using webgpu, glfw must not create an opengl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	}

	configureInput(window, &w.input)

	return w, nil
}

func (g *glfwWindow) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *glfwWindow) Close() {
	g.win.SetShouldClose(true)
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) PollInput() InputState {
	g.input.nextTick()
	glfw.PollEvents()
	return g.input.snapshot()
}

func (g *glfwWindow) Terminate() {
	if g.terminated {
		return
	}

	g.terminated = true

	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(frame func() error) error {
	for !g.win.ShouldClose() {
		if err := frame(); err != nil {
			return err
		}
	}

	return nil
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeySpace:  KeySpace,
	glfw.KeyLeft:   KeyLeft,
	glfw.KeyRight:  KeyRight,
	glfw.Key1:      KeyDigit1,
	glfw.Key2:      KeyDigit2,
	glfw.Key3:      KeyDigit3,
	glfw.Key4:      KeyDigit4,
	glfw.Key5:      KeyDigit5,
	glfw.Key6:      KeyDigit6,
	glfw.Key7:      KeyDigit7,
	glfw.Key8:      KeyDigit8,
	glfw.Key9:      KeyDigit9,
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey, scancode)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			input.Keys.press(key)

		case glfw.Release:
			input.Keys.release(key)
		}
	})
}

func keyOf(glfwKey glfw.Key, scancode int) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
		)
	}

	return
}
