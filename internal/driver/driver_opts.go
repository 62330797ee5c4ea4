package driver

import "time"

type FrameDriverOpt func(*FrameDriver)

func WithFrameLength(frameLength time.Duration) FrameDriverOpt {
	return func(d *FrameDriver) {
		d.frameLength = frameLength
	}
}

// WithClock replaces the wall clock used to measure frame deltas.
func WithClock(now func() time.Time) FrameDriverOpt {
	return func(d *FrameDriver) {
		d.now = now
	}
}
