package processor

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/trisberg/streaming-processor/message"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
	"github.com/trisberg/streaming-processor/rpc/riff"
	"github.com/trisberg/streaming-processor/topic"
)

// echoStream replays every data frame it was sent as an output frame on
// result index 0, once the outbound half is closed.
type echoStream struct {
	grpc.ClientStream
	collected []*riff.InputFrame
	pos       int
}

func (e *echoStream) Send(signal *riff.InputSignal) error {
	if data := signal.GetData(); data != nil {
		e.collected = append(e.collected, data)
	}
	return nil
}

func (e *echoStream) CloseSend() error { return nil }

func (e *echoStream) Recv() (*riff.OutputSignal, error) {
	if e.pos >= len(e.collected) {
		return nil, io.EOF
	}
	in := e.collected[e.pos]
	e.pos++
	return &riff.OutputSignal{
		Frame: &riff.OutputSignal_Data{
			Data: &riff.OutputFrame{
				Payload:     in.GetPayload(),
				ContentType: in.GetContentType(),
				Headers:     in.GetHeaders(),
				ResultIndex: 0,
			},
		},
	}, nil
}

type echoFunction struct{}

func (echoFunction) Invoke(ctx context.Context, opts ...grpc.CallOption) (riff.Riff_InvokeClient, error) {
	return &echoStream{}, nil
}

func TestProcessor_EndToEnd(t *testing.T) {
	broker := newFakeBroker()
	recordA := encodedRecord(t, "a", "text/plain")
	recordA.Offset = 0
	recordB := encodedRecord(t, "b", "text/plain")
	recordB.Offset = 1
	broker.records["in"] = []*liiklus.ReceiveReply_Record{recordA, recordB}

	pool := newGatewayPool(t, map[string]*fakeBroker{"gw:6565": broker})

	binding, err := NewBinding(
		[]topic.Address{{Gateway: "gw:6565", Topic: "in"}},
		[]string{"in"},
		[]topic.Address{{Gateway: "gw:6565", Topic: "out"}},
		[]string{"out"},
		[]string{"text/plain"},
	)
	require.NoError(t, err)

	p, err := New(Deps{
		Binding:  binding,
		Group:    "echo-group",
		Window:   100 * time.Millisecond,
		Capacity: 16,
		Pool:     pool,
		Function: echoFunction{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool {
		return broker.publishedCount() == 2
	}, 3*time.Second, 10*time.Millisecond, "expected both records to round-trip")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "cancellation is a clean shutdown")
	case <-time.After(3 * time.Second):
		t.Fatal("pipeline did not stop after cancellation")
	}

	acks, published, events := broker.snapshot()

	require.Len(t, acks, 2)
	assert.Equal(t, "echo-group", acks[0].GetGroup())
	assert.Equal(t, "in", acks[0].GetTopic())
	assert.Equal(t, uint64(0), acks[0].GetOffset())
	assert.Equal(t, uint64(1), acks[1].GetOffset())

	require.Len(t, published, 2)
	for i, want := range []string{"a", "b"} {
		assert.Equal(t, "out", published[i].GetTopic())
		msg, err := message.Decode(published[i].GetValue())
		require.NoError(t, err)
		assert.Equal(t, []byte(want), msg.GetPayload(), "publish order follows receive order")
		assert.Equal(t, "text/plain", msg.GetContentType())
	}

	// Offsets are committed on receipt, before the window closes and the
	// results are published.
	lastAck, firstPublish := -1, len(events)
	for i, event := range events {
		if strings.HasPrefix(event, "ack:") && i > lastAck {
			lastAck = i
		}
		if strings.HasPrefix(event, "publish:") && i < firstPublish {
			firstPublish = i
		}
	}
	assert.Less(t, lastAck, firstPublish, "every ack precedes the first publish")
}
