package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/rpc/riff"
)

// sessionState tracks where one invocation session is in its lifecycle.
// The transitions are strictly NotStarted -> Started -> Streaming ->
// Completed; the session type refuses anything else, so a data frame can
// never precede the start frame.
type sessionState int

const (
	sessionNotStarted sessionState = iota
	sessionStarted
	sessionStreaming
	sessionCompleted
)

// String returns the string representation of sessionState
func (s sessionState) String() string {
	switch s {
	case sessionNotStarted:
		return "not_started"
	case sessionStarted:
		return "started"
	case sessionStreaming:
		return "streaming"
	case sessionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// session owns the framing state of one invocation exchange: the single
// bidirectional call that carries the start frame, the window's data frames,
// and the reply stream.
type session struct {
	id     string
	stream riff.Riff_InvokeClient
	state  sessionState
}

// start emits the handshake frame. Exactly one start frame opens every
// session, before any data frame.
func (s *session) start(frame *riff.StartFrame) error {
	if s.state != sessionNotStarted {
		return errors.WrapFatal(
			fmt.Errorf("start frame in state %s", s.state),
			"session", "start", "framing order check")
	}
	s.state = sessionStarted
	if err := s.stream.Send(&riff.InputSignal{
		Frame: &riff.InputSignal_Start{Start: frame},
	}); err != nil {
		return errors.WrapTransient(err, "session", "start", "start frame send")
	}
	s.state = sessionStreaming
	return nil
}

// forward sends one tagged data frame on the open session.
func (s *session) forward(frame *riff.InputFrame) error {
	if s.state != sessionStreaming {
		return errors.WrapFatal(
			fmt.Errorf("data frame in state %s", s.state),
			"session", "forward", "framing order check")
	}
	if err := s.stream.Send(&riff.InputSignal{
		Frame: &riff.InputSignal_Data{Data: frame},
	}); err != nil {
		return errors.WrapTransient(err, "session", "forward", "data frame send")
	}
	return nil
}

// finishSend closes the outbound half of the call once the window's input
// sequence completes.
func (s *session) finishSend() error {
	if s.state != sessionStreaming {
		return errors.WrapFatal(
			fmt.Errorf("close in state %s", s.state),
			"session", "finishSend", "framing order check")
	}
	if err := s.stream.CloseSend(); err != nil {
		return errors.WrapTransient(err, "session", "finishSend", "outbound close")
	}
	return nil
}

// Invoker drives invocation sessions against the function: one bidirectional
// RPC exchange per window, start frame first, then the window's frames in
// order, then the reply stream drained to completion.
type Invoker struct {
	client  riff.RiffClient
	binding *Binding
	logger  *slog.Logger
}

// NewInvoker creates an invoker bound to the function client
func NewInvoker(client riff.RiffClient, binding *Binding, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{client: client, binding: binding, logger: logger}
}

// Drive runs one complete invocation session for the given window, calling
// emit for every output frame in arrival order. If the call fails
// mid-session the error is surfaced and the session abandoned; replies
// already emitted are not retracted and no retry is attempted here.
func (inv *Invoker) Drive(ctx context.Context, window Window, emit func(*riff.OutputFrame) error) (frames int, err error) {
	stream, err := inv.client.Invoke(ctx)
	if err != nil {
		return 0, errors.WrapTransient(err, "invoker", "Drive", "invoke call")
	}

	sess := &session{id: window.ID, stream: stream}
	logger := inv.logger.With("session", window.ID)

	if err := sess.start(inv.binding.StartFrame()); err != nil {
		return 0, err
	}
	logger.Debug("session started",
		"inputs", len(inv.binding.Inputs),
		"outputs", len(inv.binding.Outputs))

	for frame := range window.Frames {
		if err := sess.forward(frame); err != nil {
			return frames, err
		}
		frames++
	}
	if err := sess.finishSend(); err != nil {
		return frames, err
	}

	for {
		signal, err := stream.Recv()
		if err == io.EOF {
			sess.state = sessionCompleted
			logger.Debug("session completed", "frames", frames)
			return frames, nil
		}
		if err != nil {
			return frames, errors.WrapTransient(err, "invoker", "Drive", "reply stream")
		}

		output := signal.GetData()
		if output == nil {
			continue
		}
		if err := emit(output); err != nil {
			return frames, err
		}
	}
}
