//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	input  InputState
	closed bool
}

func NewWindow(opts WindowOptions) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", opts.Title)

	canvas.Set("width", opts.Width)
	canvas.Set("height", opts.Height)

	win := &jsWindow{canvas: canvas}
	win.listenKeys(document)

	return win, nil
}

func (g *jsWindow) ShouldClose() bool {
	return g.closed
}

func (g *jsWindow) Close() {
	g.closed = true
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	return uint32(g.canvas.Get("width").Int()), uint32(g.canvas.Get("height").Int())
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) PollInput() InputState {
	state := g.input.snapshot()
	g.input.nextTick()
	return state
}

func (g *jsWindow) Terminate() {
	// do nothing
}

// Run hands the frame callback to the browser, blocking the calling
// goroutine would freeze the page.
func (g *jsWindow) Run(frame func() error) error {
	errc := make(chan error, 1)

	var step js.Func
	step = js.FuncOf(func(this js.Value, args []js.Value) any {
		if g.closed {
			step.Release()
			errc <- nil
			return nil
		}

		if err := frame(); err != nil {
			step.Release()
			errc <- err
			return nil
		}

		js.Global().Call("requestAnimationFrame", step)
		return nil
	})

	js.Global().Call("requestAnimationFrame", step)

	return <-errc
}

var jsCodeToKey = map[string]Key{
	"Escape":     KeyEscape,
	"Space":      KeySpace,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"Digit1":     KeyDigit1,
	"Digit2":     KeyDigit2,
	"Digit3":     KeyDigit3,
	"Digit4":     KeyDigit4,
	"Digit5":     KeyDigit5,
	"Digit6":     KeyDigit6,
	"Digit7":     KeyDigit7,
	"Digit8":     KeyDigit8,
	"Digit9":     KeyDigit9,
}

func (g *jsWindow) listenKeys(document js.Value) {
	handler := func(pressed bool) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			event := args[0]
			if event.Get("repeat").Bool() {
				return nil
			}

			key, ok := jsCodeToKey[event.Get("code").String()]
			if !ok {
				return nil
			}

			if pressed {
				g.input.Keys.press(key)
			} else {
				g.input.Keys.release(key)
			}

			return nil
		})
	}

	document.Call("addEventListener", "keydown", handler(true))
	document.Call("addEventListener", "keyup", handler(false))
}
