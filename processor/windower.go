package processor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trisberg/streaming-processor/rpc/riff"
)

// Window is one time-bounded slice of the merged input stream. Its frame
// channel is closed when the window's interval elapses; a window that saw no
// frames still opens and closes, producing an invocation session with a
// start frame and no data frames.
type Window struct {
	// ID correlates the window's log lines and its invocation session.
	ID string
	// Frames yields the window's tagged input frames in merged order.
	Frames <-chan *riff.InputFrame
}

// Windower slices the merged tagged-frame stream into consecutive,
// non-overlapping windows of fixed wall-clock duration.
type Windower struct {
	interval time.Duration
	capacity int

	// newTimer is swapped by tests to drive window boundaries from a
	// synthetic clock. It returns the boundary channel and a stop function.
	newTimer func(time.Duration) (<-chan time.Time, func() bool)
}

// NewWindower creates a windower with the given window duration and
// per-window frame buffer capacity. A full buffer blocks the windower and
// back-pressures the input subscribers.
func NewWindower(interval time.Duration, capacity int) *Windower {
	return &Windower{
		interval: interval,
		capacity: capacity,
		newTimer: func(d time.Duration) (<-chan time.Time, func() bool) {
			t := time.NewTimer(d)
			return t.C, t.Stop
		},
	}
}

// Run consumes the merged frame stream and emits windows until the stream is
// exhausted or the context is cancelled. The window is offered to out as
// soon as it opens, so an invocation session can begin before any frame
// arrives.
func (w *Windower) Run(ctx context.Context, in <-chan *riff.InputFrame, out chan<- Window) error {
	for {
		frames := make(chan *riff.InputFrame, w.capacity)
		window := Window{ID: uuid.NewString(), Frames: frames}

		select {
		case out <- window:
		case <-ctx.Done():
			close(frames)
			return ctx.Err()
		}

		boundary, stop := w.newTimer(w.interval)
		if done, err := w.fill(ctx, in, frames, boundary); done {
			stop()
			close(frames)
			return err
		}
		close(frames)
	}
}

// fill forwards frames into the current window until its boundary fires.
// It reports done=true when the input is exhausted or the context is
// cancelled.
func (w *Windower) fill(
	ctx context.Context,
	in <-chan *riff.InputFrame,
	frames chan<- *riff.InputFrame,
	boundary <-chan time.Time,
) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case <-boundary:
			return false, nil
		case frame, ok := <-in:
			if !ok {
				return true, nil
			}
			select {
			case frames <- frame:
			case <-ctx.Done():
				return true, ctx.Err()
			}
		}
	}
}
