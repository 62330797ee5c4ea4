package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-hamster/internal/display"
	"github.com/pixil98/go-hamster/internal/driver"
	"github.com/pixil98/go-hamster/internal/environment"
	"github.com/pixil98/go-hamster/internal/input"
	"github.com/pixil98/go-hamster/internal/storage"
)

const (
	DefaultStoreKey   = "environment"
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

var errQuit = errors.New("quit requested")

// Host runs an environment on a terminal screen. Everything it owns is
// touched only from the frame driver's goroutine.
type Host struct {
	store        storage.BlobStore
	key          string
	seed         environment.Seed
	frameLength  time.Duration
	escapeWindow time.Duration
	cellWidth    float64
	cellHeight   float64
	canvasOpts   []display.CanvasOpt
	hud          *display.HUD

	screen  tcell.Screen
	env     *environment.Environment
	proj    display.Projection
	canvas  *display.Canvas
	pointer input.Pointer
	keys    *input.Keys
}

func NewHost(store storage.BlobStore, opts ...HostOpt) (*Host, error) {
	h := &Host{
		store:        store,
		key:          DefaultStoreKey,
		seed:         environment.DefaultSeed(),
		frameLength:  driver.DefaultFrameLength,
		escapeWindow: input.DefaultEscapeWindow,
		cellWidth:    DefaultCellWidth,
		cellHeight:   DefaultCellHeight,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.hud == nil {
		hud, err := display.NewHUD(display.DefaultStatusTemplate)
		if err != nil {
			return nil, err
		}
		h.hud = hud
	}

	return h, nil
}

func (h *Host) Start(ctx context.Context) error {
	if err := h.open(); err != nil {
		if cerr := storage.Close(h.store); cerr != nil {
			slog.ErrorContext(ctx, "closing store", "error", cerr)
		}
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	d := driver.NewFrameDriver([]driver.Ticker{h}, driver.WithFrameLength(h.frameLength))
	go h.poll(ctx, d)

	err := d.Start(ctx)
	if errors.Is(err, errQuit) {
		slog.InfoContext(ctx, "quit requested")
		err = nil
	}

	cancel()
	h.close()

	return err
}

// open prepares the screen and loads the environment.
func (h *Host) open() error {
	if h.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		h.screen = s
	}

	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	h.screen.EnableMouse()
	h.screen.HideCursor()

	h.keys = input.NewKeys(h.escapeWindow)
	h.resize()
	h.env = h.load()
	return nil
}

func (h *Host) close() {
	if err := h.save(); err != nil {
		slog.Error("saving environment", "error", err)
	}
	if err := storage.Close(h.store); err != nil {
		slog.Error("closing store", "error", err)
	}
	h.screen.Fini()
}

func (h *Host) load() *environment.Environment {
	b, err := h.store.Get(h.key)
	if errors.Is(err, storage.ErrNotFound) {
		env, err := environment.NewSeeded(h.seed)
		if err != nil {
			slog.Error("seeding environment", "error", err)
			return environment.New(h.seed.EmptyDrawer())
		}
		slog.Info("no saved environment, starting fresh")
		return env
	}
	if err != nil {
		slog.Error("reading saved environment", "error", err)
		return environment.New(h.seed.EmptyDrawer())
	}

	return environment.LoadOrDefault(b, h.seed.EmptyDrawer())
}

func (h *Host) save() error {
	b, err := h.env.Save()
	if err != nil {
		return err
	}
	return h.store.Put(h.key, b)
}

func (h *Host) poll(ctx context.Context, d *driver.FrameDriver) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		err := d.Post(ctx, func(context.Context) error {
			return h.handle(ev)
		})
		if err != nil {
			return
		}
	}
}

func (h *Host) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if h.pointer.Update(ev) {
			res := h.env.ProcessClick(h.proj.ToWorld(h.pointer.Cell()))
			slog.Debug("click", "result", res)
		}
	case *tcell.EventKey:
		if h.keys.Handle(ev) == input.KeyQuit {
			return errQuit
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return nil
}

func (h *Host) resize() {
	_, rows := h.screen.Size()
	h.proj = display.Projection{
		CellWidth:  h.cellWidth,
		CellHeight: h.cellHeight,
		Rows:       rows,
	}
	h.canvas = display.NewCanvas(h.screen, h.proj, h.canvasOpts...)
}

// Tick advances and redraws one frame.
func (h *Host) Tick(_ context.Context, dt float64) error {
	h.env.MoveCursor(h.proj.ToWorld(h.pointer.Cell()))
	h.env.Animate(dt)

	h.screen.Clear()
	h.env.Draw(h.canvas)
	if err := h.hud.Draw(h.screen, h.status()); err != nil {
		return err
	}
	h.screen.Show()
	return nil
}

func (h *Host) status() display.Status {
	s := display.Status{
		DrawerUsed:  h.env.Drawer().Len(),
		DrawerSlots: h.env.Drawer().Capacity(),
		Hamsters:    len(h.env.Dynamics()),
	}
	if h.env.Holding() {
		s.Held = h.env.Cursor().Symbol().String()
	}
	return s
}
