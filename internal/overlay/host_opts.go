package overlay

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-hamster/internal/display"
	"github.com/pixil98/go-hamster/internal/environment"
)

type HostOpt func(*Host)

// WithScreen replaces the terminal screen, mostly for simulation in tests.
func WithScreen(s tcell.Screen) HostOpt {
	return func(h *Host) {
		h.screen = s
	}
}

func WithStoreKey(key string) HostOpt {
	return func(h *Host) {
		h.key = key
	}
}

func WithSeed(seed environment.Seed) HostOpt {
	return func(h *Host) {
		h.seed = seed
	}
}

func WithFrameLength(d time.Duration) HostOpt {
	return func(h *Host) {
		h.frameLength = d
	}
}

func WithEscapeWindow(d time.Duration) HostOpt {
	return func(h *Host) {
		h.escapeWindow = d
	}
}

// WithCellSize sets how many environment units one terminal cell covers.
func WithCellSize(width, height float64) HostOpt {
	return func(h *Host) {
		h.cellWidth = width
		h.cellHeight = height
	}
}

func WithCanvasOpts(opts ...display.CanvasOpt) HostOpt {
	return func(h *Host) {
		h.canvasOpts = append(h.canvasOpts, opts...)
	}
}

func WithHUD(hud *display.HUD) HostOpt {
	return func(h *Host) {
		h.hud = hud
	}
}
