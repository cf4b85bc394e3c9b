package glabs

import (
	"fmt"
	"log/slog"
)

// Config is what the glabs command needs to pick and run a lab.
type Config struct {
	Lab    string
	Width  int
	Height int
	// Title defaults to the lab's title when empty.
	Title    string
	TPS      int
	LogLevel string
	Textures []string
	// ExportSTL, when set, writes the lab's geometry to this path instead of
	// opening a window.
	ExportSTL string
	Culling   bool
}

func DefaultConfig() Config {
	return Config{
		Lab:      "shapes2d",
		Width:    640,
		Height:   480,
		TPS:      60,
		LogLevel: "info",
	}
}

func (c Config) Validate() error {
	if _, ok := labRegistry[c.Lab]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLab, c.Lab)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidArgument, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: ticks per second %d", ErrInvalidArgument, c.TPS)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel: debug, info, warn or error, optionally with an
// offset such as "info+2".
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidArgument, c.LogLevel)
	}
	return l, nil
}

// WindowTitle is Title, or the lab's own title.
func (c Config) WindowTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return LabTitle(c.Lab)
}

// LabOptions turns the config into options for NewLab.
func (c Config) LabOptions() []LabOption {
	var opts []LabOption
	if len(c.Textures) > 0 {
		opts = append(opts, WithTextures(c.Textures...))
	}
	return opts
}
