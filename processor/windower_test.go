package processor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trisberg/streaming-processor/rpc/riff"
)

// syntheticWindower returns a windower whose window boundaries fire only when
// the test sends on the returned channel.
func syntheticWindower(capacity int) (*Windower, chan time.Time) {
	boundary := make(chan time.Time)
	w := NewWindower(time.Hour, capacity)
	w.newTimer = func(time.Duration) (<-chan time.Time, func() bool) {
		return boundary, func() bool { return true }
	}
	return w, boundary
}

func frame(payload string) *riff.InputFrame {
	return &riff.InputFrame{Payload: []byte(payload), ContentType: "text/plain"}
}

func drain(t *testing.T, w Window) []*riff.InputFrame {
	t.Helper()
	var frames []*riff.InputFrame
	for {
		select {
		case f, ok := <-w.Frames:
			if !ok {
				return frames
			}
			frames = append(frames, f)
		case <-time.After(time.Second):
			t.Fatal("timed out draining window")
		}
	}
}

func TestWindower_SlicesByBoundary(t *testing.T) {
	w, boundary := syntheticWindower(16)
	in := make(chan *riff.InputFrame)
	out := make(chan Window)

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, in, out) }()

	first := <-out
	in <- frame("a")
	in <- frame("b")
	boundary <- time.Now()

	frames := drain(t, first)
	require.Len(t, frames, 2)
	assert.Equal(t, []byte("a"), frames[0].GetPayload())
	assert.Equal(t, []byte("b"), frames[1].GetPayload())

	second := <-out
	assert.NotEqual(t, first.ID, second.ID)
	in <- frame("c")
	boundary <- time.Now()

	frames = drain(t, second)
	require.Len(t, frames, 1)
	assert.Equal(t, []byte("c"), frames[0].GetPayload())

	third := <-out
	close(in)
	require.NoError(t, <-done)
	assert.Empty(t, drain(t, third))
}

func TestWindower_EmptyWindowStillEmitted(t *testing.T) {
	w, boundary := syntheticWindower(16)
	in := make(chan *riff.InputFrame)
	out := make(chan Window)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), in, out) }()

	first := <-out
	boundary <- time.Now()
	assert.Empty(t, drain(t, first), "a window with no frames still opens and closes")

	<-out
	close(in)
	require.NoError(t, <-done)
}

func TestWindower_WindowOpensBeforeFramesArrive(t *testing.T) {
	w, _ := syntheticWindower(16)
	in := make(chan *riff.InputFrame)
	out := make(chan Window)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), in, out) }()

	// The window is offered before any frame is read from the input, so a
	// session can start on an idle stream.
	select {
	case w := <-out:
		assert.NotEmpty(t, w.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a window before any input")
	}

	close(in)
	require.NoError(t, <-done)
}

func TestWindower_ContextCancellation(t *testing.T) {
	w, _ := syntheticWindower(16)
	in := make(chan *riff.InputFrame)
	out := make(chan Window)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, in, out) }()

	first := <-out
	cancel()

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	drain(t, first)
}

func TestWindower_InputExhausted(t *testing.T) {
	w, _ := syntheticWindower(16)
	in := make(chan *riff.InputFrame)
	out := make(chan Window)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), in, out) }()

	first := <-out
	in <- frame("last")
	close(in)

	require.NoError(t, <-done)
	frames := drain(t, first)
	require.Len(t, frames, 1)
	assert.Equal(t, []byte("last"), frames[0].GetPayload())
}
