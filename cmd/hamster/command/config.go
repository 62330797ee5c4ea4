package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hamster/internal/driver"
	"github.com/pixil98/go-hamster/internal/input"
)

const maxFrameInterval = time.Second

type Config struct {
	FrameInterval string        `json:"frame_interval"`
	EscapeWindow  string        `json:"escape_window"`
	LogPath       string        `json:"log_path"`
	Storage       StorageConfig `json:"storage"`
	Display       DisplayConfig `json:"display"`
	Drawer        DrawerConfig  `json:"drawer"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.FrameInterval != "" {
		d, err := time.ParseDuration(c.FrameInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing frame_interval: %w", err))
		} else if d <= 0 || d > maxFrameInterval {
			el.Add(fmt.Errorf("frame_interval must be above 0 and at most %s", maxFrameInterval))
		}
	}

	if c.EscapeWindow != "" {
		d, err := time.ParseDuration(c.EscapeWindow)
		if err != nil {
			el.Add(fmt.Errorf("parsing escape_window: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("escape_window must be positive"))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Display.validate())
	el.Add(c.Drawer.validate())

	return el.Err()
}

func (c *Config) frameInterval() time.Duration {
	return durationOr(c.FrameInterval, driver.DefaultFrameLength)
}

func (c *Config) escapeWindow() time.Duration {
	return durationOr(c.EscapeWindow, input.DefaultEscapeWindow)
}

// durationOr parses s, falling back to def when s is empty. Validate has
// already rejected anything unparseable.
func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
