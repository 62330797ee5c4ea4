package driver

import (
	"context"
	"time"
)

const (
	DefaultFrameLength = time.Second / 60

	// MaxDelta caps the seconds a single frame may advance the simulation,
	// so a stalled terminal does not teleport everything on resume.
	MaxDelta = 0.25

	inboxSize = 64
)

// Ticker is advanced once per frame by dt seconds.
type Ticker interface {
	Tick(ctx context.Context, dt float64) error
}

// TickerFunc adapts a function to a Ticker.
type TickerFunc func(ctx context.Context, dt float64) error

func (f TickerFunc) Tick(ctx context.Context, dt float64) error {
	return f(ctx, dt)
}

// FrameDriver runs its tickers at a fixed frame rate. Work posted from other
// goroutines runs on the driver's goroutine between frames, so tickers never
// need their own locking.
type FrameDriver struct {
	frameLength time.Duration
	tickers     []Ticker
	now         func() time.Time

	inbox chan func(context.Context) error
	last  time.Time
}

func NewFrameDriver(tickers []Ticker, opts ...FrameDriverOpt) *FrameDriver {
	d := &FrameDriver{
		frameLength: DefaultFrameLength,
		tickers:     tickers,
		now:         time.Now,
		inbox:       make(chan func(context.Context) error, inboxSize),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *FrameDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.frameLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-d.inbox:
			if err := fn(ctx); err != nil {
				return err
			}
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Post queues fn to run on the driver goroutine. It blocks while the inbox
// is full.
func (d *FrameDriver) Post(ctx context.Context, fn func(context.Context) error) error {
	select {
	case d.inbox <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick advances every ticker by the time since the previous frame. The
// first frame advances by zero.
func (d *FrameDriver) Tick(ctx context.Context) error {
	now := d.now()
	dt := 0.0
	if !d.last.IsZero() {
		dt = clampDelta(now.Sub(d.last).Seconds())
	}
	d.last = now

	for _, t := range d.tickers {
		if err := t.Tick(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}

func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}
