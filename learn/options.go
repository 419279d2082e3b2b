package learn

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/learnwebgpu/lessons"
	"github.com/oliverbestmann/learnwebgpu/pulse"
	"github.com/pelletier/go-toml/v2"
)

type Options struct {
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	WindowTitle  string `toml:"window_title"`

	// allow the user to resize the window
	Resizable bool `toml:"resizable"`

	// name of the lesson to start with
	Lesson string `toml:"lesson"`

	// one of fifo, immediate or mailbox
	PresentMode string `toml:"present_mode"`

	ForceFallbackAdapter bool `toml:"force_fallback_adapter"`

	// write a cpu profile to the working directory
	Profile bool `toml:"profile"`

	// one of debug, info, warn or error
	LogLevel string `toml:"log_level"`
}

// WithDefaults returns a copy of the options with all zero values
// replaced by their defaults.
func (opts Options) WithDefaults() Options {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 640
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 480
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Learn WebGPU"
	}

	if opts.Lesson == "" {
		opts.Lesson = "triangle"
	}

	if opts.PresentMode == "" {
		opts.PresentMode = "fifo"
	}

	if opts.LogLevel == "" {
		opts.LogLevel = "info"
	}

	return opts
}

// Validate checks the options after defaults have been applied.
func (opts Options) Validate() error {
	if opts.WindowWidth < 0 || opts.WindowHeight < 0 {
		return fmt.Errorf("invalid window size %dx%d", opts.WindowWidth, opts.WindowHeight)
	}

	if lessons.IndexOf(opts.Lesson) < 0 {
		return fmt.Errorf("%w %q", lessons.ErrUnknownLesson, opts.Lesson)
	}

	if _, err := pulse.ParsePresentMode(opts.PresentMode); err != nil {
		return err
	}

	if _, err := opts.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel.
func (opts Options) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", opts.LogLevel, err)
	}

	return level, nil
}

// LoadOptions reads options from a toml file. Values missing
// from the file keep their defaults, unknown keys are an error.
func LoadOptions(path string) (Options, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	opts := Options{}.WithDefaults()

	decoder := toml.NewDecoder(fp).DisallowUnknownFields()
	if err := decoder.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("decode config %q: %w", path, err)
	}

	return opts.WithDefaults(), nil
}
