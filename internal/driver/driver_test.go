package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type recordingTicker struct {
	deltas []float64
}

func (r *recordingTicker) Tick(_ context.Context, dt float64) error {
	r.deltas = append(r.deltas, dt)
	return nil
}

func TestFrameDriver_Tick_Deltas(t *testing.T) {
	tests := map[string]struct {
		steps  []time.Duration
		expDts []float64
	}{
		"first frame is zero": {
			steps:  []time.Duration{0},
			expDts: []float64{0},
		},
		"measures elapsed time": {
			steps:  []time.Duration{0, 125 * time.Millisecond, 250 * time.Millisecond},
			expDts: []float64{0, 0.125, 0.25},
		},
		"clamps long stalls": {
			steps:  []time.Duration{0, 5 * time.Second},
			expDts: []float64{0, MaxDelta},
		},
		"clock going backwards": {
			steps:  []time.Duration{0, -time.Second},
			expDts: []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			rec := &recordingTicker{}
			d := NewFrameDriver([]Ticker{rec}, WithClock(clock.now))

			for _, step := range tt.steps {
				clock.advance(step)
				if err := d.Tick(context.Background()); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			testutil.AssertEqual(t, "frame count", len(rec.deltas), len(tt.expDts))
			for i, exp := range tt.expDts {
				testutil.AssertEqual(t, "delta", rec.deltas[i], exp)
			}
		})
	}
}

func TestFrameDriver_Tick_StopsOnError(t *testing.T) {
	expErr := errors.New("boom")
	after := &recordingTicker{}

	d := NewFrameDriver([]Ticker{
		TickerFunc(func(context.Context, float64) error { return expErr }),
		after,
	})

	err := d.Tick(context.Background())
	if !errors.Is(err, expErr) {
		t.Errorf("got error %v, expected %v", err, expErr)
	}
	testutil.AssertEqual(t, "later ticker frames", len(after.deltas), 0)
}

func TestFrameDriver_Start_RunsPostedWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewFrameDriver(nil, WithFrameLength(time.Hour))

	ran := make(chan struct{})
	err := d.Post(ctx, func(context.Context) error {
		close(ran)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("posted work never ran")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop on cancel")
	}
}

func TestFrameDriver_Start_PostedErrorStops(t *testing.T) {
	expErr := errors.New("quit")
	d := NewFrameDriver(nil, WithFrameLength(time.Hour))

	if err := d.Post(context.Background(), func(context.Context) error { return expErr }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := d.Start(context.Background())
	if !errors.Is(err, expErr) {
		t.Errorf("got error %v, expected %v", err, expErr)
	}
}

func TestFrameDriver_Post_CancelledWhenFull(t *testing.T) {
	d := NewFrameDriver(nil)
	for i := 0; i < inboxSize; i++ {
		if err := d.Post(context.Background(), func(context.Context) error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Post(ctx, func(context.Context) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, expected %v", err, context.Canceled)
	}
}
