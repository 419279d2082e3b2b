// Package learn runs the lessons inside a window. The Application follows
// the shape of the tutorial: Initialize, MainLoop while IsRunning, Terminate.
package learn

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/learnwebgpu/glimpse"
	"github.com/oliverbestmann/learnwebgpu/lessons"
	"github.com/oliverbestmann/learnwebgpu/pulse"
)

type Application struct {
	window    glimpse.Window
	ctx       *pulse.Context
	view      *pulse.View
	pipelines *lessons.PipelineCache
	lesson    lessons.Lesson

	clock Clock
	stats FrameTimes

	surfaceWidth  uint32
	surfaceHeight uint32

	terminated bool
}

// Run initializes the application, runs the main loop
// until the window is closed and terminates the application.
func Run(opts Options) error {
	app, err := Initialize(opts)
	if err != nil {
		return err
	}

	defer app.Terminate()

	return app.window.Run(app.MainLoop)
}

// Initialize opens the window and creates the gpu context and the
// first lesson. Everything created so far is released on error.
func Initialize(opts Options) (app *Application, err error) {
	opts = opts.WithDefaults()

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	presentMode, err := pulse.ParsePresentMode(opts.PresentMode)
	if err != nil {
		return nil, err
	}

	app = &Application{}

	defer func() {
		if err != nil {
			app.Terminate()
			app = nil
		}
	}()

	// create a new window (or canvas)
	app.window, err = glimpse.NewWindow(glimpse.WindowOptions{
		Width:     opts.WindowWidth,
		Height:    opts.WindowHeight,
		Title:     opts.WindowTitle,
		Resizable: opts.Resizable,
		Profile:   opts.Profile,
	})

	if err != nil {
		return app, fmt.Errorf("create window: %w", err)
	}

	// initialize the webgpu device
	app.ctx, err = pulse.New(app.window.SurfaceDescriptor(), pulse.ContextOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})

	if err != nil {
		return app, fmt.Errorf("initialize wgpu: %w", err)
	}

	app.view, err = pulse.NewView(app.ctx, pulse.ViewOptions{PresentMode: presentMode})
	if err != nil {
		return app, fmt.Errorf("create view: %w", err)
	}

	// a minimized window is configured in the main loop
	if err := app.resize(); err != nil && !errors.Is(err, pulse.ErrZeroSizedSurface) {
		return app, err
	}

	app.pipelines = lessons.NewPipelineCache(app.ctx)

	lesson, err := lessons.ByName(opts.Lesson)
	if err != nil {
		return app, err
	}

	if err := lesson.Initialize(app.env()); err != nil {
		return app, fmt.Errorf("initialize lesson %q: %w", lesson.Name(), err)
	}

	app.lesson = lesson

	slog.Info("Application initialized", slog.String("lesson", lesson.Name()))

	return app, nil
}

func (app *Application) env() lessons.Env {
	return lessons.Env{
		Context:   app.ctx,
		Format:    app.view.Format(),
		Pipelines: app.pipelines,
	}
}

// IsRunning returns false once the window was asked to close.
func (app *Application) IsRunning() bool {
	return !app.terminated && !app.window.ShouldClose()
}

// Lesson returns the name of the active lesson.
func (app *Application) Lesson() string {
	if app.lesson == nil {
		return ""
	}

	return app.lesson.Name()
}

// MainLoop processes input and renders a single frame.
func (app *Application) MainLoop() error {
	if app.ctx.Lost() {
		return pulse.ErrDeviceLost
	}

	input := app.window.PollInput()

	if err := app.handleInput(input); err != nil {
		return err
	}

	if !app.IsRunning() {
		return nil
	}

	err := app.resize()
	switch {
	case errors.Is(err, pulse.ErrZeroSizedSurface):
		// minimized, nothing to render to
		return nil

	case err != nil:
		return err
	}

	now := time.Now()

	elapsed, delta := app.clock.Tick(now)

	if app.stats.Tick(now) {
		slog.Debug("Frame stats",
			slog.Uint64("frames", app.stats.FrameCount),
			slog.Float64("fps", app.stats.FPS()),
			slog.Duration("max", app.stats.MaxDuration),
		)
	}

	frameState := lessons.FrameState{
		Time:   float32(elapsed.Seconds()),
		Delta:  float32(delta.Seconds()),
		Frame:  app.stats.FrameCount,
		Width:  app.surfaceWidth,
		Height: app.surfaceHeight,
	}

	// uniform buffers are written before the pass is encoded
	if err := app.lesson.Update(frameState); err != nil {
		return fmt.Errorf("update lesson %q: %w", app.lesson.Name(), err)
	}

	frame, err := app.view.AcquireFrame()
	switch {
	case errors.Is(err, pulse.ErrFrameSkipped):
		slog.Warn("Skip frame", slog.String("err", err.Error()))

		// force a reconfigure of the surface in the next frame
		app.surfaceWidth, app.surfaceHeight = 0, 0
		return nil

	case err != nil:
		return fmt.Errorf("acquire frame: %w", err)
	}

	defer frame.Release()

	if err := frame.Render(app.ctx, app.lesson.ClearColor(), app.lesson.Draw); err != nil {
		return fmt.Errorf("render lesson %q: %w", app.lesson.Name(), err)
	}

	frame.Present()

	// process callbacks without waiting for the gpu
	app.ctx.Poll(false)

	return nil
}

// resize reconfigures the surface if the size of the window changed.
func (app *Application) resize() error {
	width, height := app.window.GetSize()
	if width == app.surfaceWidth && height == app.surfaceHeight {
		return nil
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	err := app.view.Configure(width, height)
	switch {
	case errors.Is(err, pulse.ErrZeroSizedSurface):
		return err

	case err != nil:
		return fmt.Errorf("resize surface: %w", err)
	}

	app.surfaceWidth = width
	app.surfaceHeight = height

	return nil
}

func (app *Application) handleInput(input glimpse.InputState) error {
	if input.IsKeyJustPressed(glimpse.KeyEscape) {
		app.window.Close()
		return nil
	}

	if input.IsKeyJustPressed(glimpse.KeySpace) {
		paused := app.clock.TogglePause()
		slog.Info("Toggle pause", slog.Bool("paused", paused))
	}

	target, ok := lessonIndexForInput(input, lessons.IndexOf(app.lesson.Name()), len(lessons.All()))
	if !ok {
		return nil
	}

	next, err := lessons.ByIndex(target)
	if err != nil {
		slog.Debug("No lesson for key", slog.Int("index", target))
		return nil
	}

	if next.Name() == app.lesson.Name() {
		return nil
	}

	err = app.switchTo(next)
	switch {
	case err == nil:
		return nil

	case app.lesson == nil:
		// the previous lesson could not be restored
		return err

	default:
		slog.Warn("Switch lesson failed", slog.String("err", err.Error()))
		return nil
	}
}

// lessonIndexForInput returns the index of the lesson requested by the
// input. Left and Right step through the lessons, digit keys select
// a lesson directly.
func lessonIndexForInput(input glimpse.InputState, current, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}

	switch {
	case input.IsKeyJustPressed(glimpse.KeyRight):
		return (current + 1) % count, true

	case input.IsKeyJustPressed(glimpse.KeyLeft):
		return (current - 1 + count) % count, true
	}

	for _, key := range glimpse.DigitKeys() {
		if input.IsKeyJustPressed(key) {
			digit, _ := key.Digit()
			return digit - 1, true
		}
	}

	return 0, false
}

// SwitchLesson releases the active lesson and initializes the named
// one. If that fails, the previous lesson is initialized again.
func (app *Application) SwitchLesson(name string) error {
	next, err := lessons.ByName(name)
	if err != nil {
		return err
	}

	return app.switchTo(next)
}

func (app *Application) switchTo(next lessons.Lesson) error {
	slog.Info("Switch lesson",
		slog.String("from", app.lesson.Name()),
		slog.String("to", next.Name()),
	)

	active, err := switchLesson(app.lesson, next, app.env())
	app.lesson = active

	return err
}

// switchLesson releases previous and initializes next. If that fails,
// previous is initialized again. It returns the lesson that is active
// afterwards, which is nil if previous could not be restored.
func switchLesson(previous, next lessons.Lesson, env lessons.Env) (lessons.Lesson, error) {
	previous.Release()

	err := next.Initialize(env)
	if err == nil {
		return next, nil
	}

	err = fmt.Errorf("initialize lesson %q: %w", next.Name(), err)

	if restoreErr := previous.Initialize(env); restoreErr != nil {
		return nil, errors.Join(err, fmt.Errorf("restore lesson %q: %w", previous.Name(), restoreErr))
	}

	return previous, err
}

// Terminate releases all resources in reverse order of creation.
// Calling Terminate more than once is fine.
func (app *Application) Terminate() {
	if app.terminated {
		return
	}

	app.terminated = true

	if app.lesson != nil {
		app.lesson.Release()
		app.lesson = nil
	}

	if app.pipelines != nil {
		app.pipelines.Purge()
		app.pipelines = nil
	}

	// the view does not own any handle besides the ones of the context
	app.view = nil

	if app.ctx != nil {
		app.ctx.Release()
		app.ctx = nil
	}

	if app.window != nil {
		app.window.Terminate()
		app.window = nil
	}

	slog.Info("Application terminated")
}
