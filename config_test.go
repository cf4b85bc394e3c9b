package glabs

import (
	"errors"
	"log/slog"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		desc   string
		modify func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"unknown lab", func(c *Config) { c.Lab = "lab0" }, ErrUnknownLab},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidArgument},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidArgument},
		{"zero tps", func(c *Config) { c.TPS = 0 }, ErrInvalidArgument},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidArgument},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			c := DefaultConfig()
			tc.modify(&c)
			err := c.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestConfigLevel(t *testing.T) {
	c := DefaultConfig()
	c.LogLevel = "warn"
	l, err := c.Level()
	if err != nil || l != slog.LevelWarn {
		t.Errorf("Level() = %v, %v, want WARN", l, err)
	}
}

func TestConfigWindowTitle(t *testing.T) {
	c := DefaultConfig()
	c.Lab = "boxes"
	if got := c.WindowTitle(); got != LabTitle("boxes") {
		t.Errorf("WindowTitle() = %q, want the lab title", got)
	}
	c.Title = "mine"
	if got := c.WindowTitle(); got != "mine" {
		t.Errorf("WindowTitle() = %q, want %q", got, "mine")
	}
}

func TestConfigLabOptions(t *testing.T) {
	c := DefaultConfig()
	if opts := c.LabOptions(); len(opts) != 0 {
		t.Errorf("default config gave %d lab options", len(opts))
	}
	c.Textures = []string{"a.png", "b.png"}
	var o labOptions
	for _, opt := range c.LabOptions() {
		opt(&o)
	}
	if len(o.textures) != 2 || o.textures[1] != "b.png" {
		t.Errorf("textures = %v", o.textures)
	}
}
