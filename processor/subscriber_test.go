package processor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
	"github.com/trisberg/streaming-processor/rpc/riff"
	"github.com/trisberg/streaming-processor/topic"
)

type fakeSubscribeStream struct {
	grpc.ClientStream
	replies []*liiklus.SubscribeReply
	pos     int
}

func (f *fakeSubscribeStream) Recv() (*liiklus.SubscribeReply, error) {
	if f.pos < len(f.replies) {
		reply := f.replies[f.pos]
		f.pos++
		return reply, nil
	}
	return nil, io.EOF
}

type fakeReceiveStream struct {
	grpc.ClientStream
	replies []*liiklus.ReceiveReply
	recvErr error
	pos     int
}

func (f *fakeReceiveStream) Recv() (*liiklus.ReceiveReply, error) {
	if f.pos < len(f.replies) {
		reply := f.replies[f.pos]
		f.pos++
		return reply, nil
	}
	if f.recvErr != nil {
		return nil, f.recvErr
	}
	return nil, io.EOF
}

// fakeGatewayClient scripts one subscription: a fixed set of assignments and
// one record stream shared by all of them. Acks are appended to events.
type fakeGatewayClient struct {
	subscribeErr error
	assignments  []*liiklus.SubscribeReply
	records      []*liiklus.ReceiveReply
	recvErr      error

	mu     sync.Mutex
	acks   []*liiklus.AckRequest
	events *[]string
}

func (f *fakeGatewayClient) Publish(ctx context.Context, in *liiklus.PublishRequest, opts ...grpc.CallOption) (*liiklus.PublishReply, error) {
	return &liiklus.PublishReply{}, nil
}

func (f *fakeGatewayClient) Subscribe(ctx context.Context, in *liiklus.SubscribeRequest, opts ...grpc.CallOption) (liiklus.LiiklusService_SubscribeClient, error) {
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	return &fakeSubscribeStream{replies: f.assignments}, nil
}

func (f *fakeGatewayClient) Receive(ctx context.Context, in *liiklus.ReceiveRequest, opts ...grpc.CallOption) (liiklus.LiiklusService_ReceiveClient, error) {
	return &fakeReceiveStream{replies: f.records, recvErr: f.recvErr}, nil
}

func (f *fakeGatewayClient) Ack(ctx context.Context, in *liiklus.AckRequest, opts ...grpc.CallOption) (*empty.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, in)
	if f.events != nil {
		*f.events = append(*f.events, fmt.Sprintf("ack:%d", in.GetOffset()))
	}
	return &empty.Empty{}, nil
}

func assignmentReply(partition uint32) *liiklus.SubscribeReply {
	return &liiklus.SubscribeReply{
		Reply: &liiklus.SubscribeReply_Assignment{
			Assignment: &liiklus.Assignment{SessionId: "sess", Partition: partition},
		},
	}
}

func recordReply(t *testing.T, payload string, offset uint64) *liiklus.ReceiveReply {
	t.Helper()
	record := encodedRecord(t, payload, "text/plain")
	record.Offset = offset
	return &liiklus.ReceiveReply{
		Reply: &liiklus.ReceiveReply_Record_{Record: record},
	}
}

func newTestSubscriber(client liiklus.LiiklusServiceClient, out chan *riff.InputFrame) *Subscriber {
	return NewSubscriber(SubscriberDeps{
		Topic:  topic.Address{Gateway: "gw-a:6565", Topic: "numbers"},
		Group:  "test-group",
		Client: client,
		Tagger: NewTagger(testBindingForSubscriber()),
		Out:    out,
	})
}

func testBindingForSubscriber() *Binding {
	binding, _ := NewBinding(
		[]topic.Address{{Gateway: "gw-a:6565", Topic: "numbers"}},
		[]string{"numbers"},
		nil, nil, nil,
	)
	return binding
}

func TestSubscriber_AcksBeforeForwarding(t *testing.T) {
	var events []string
	client := &fakeGatewayClient{
		assignments: []*liiklus.SubscribeReply{assignmentReply(0)},
		records: []*liiklus.ReceiveReply{
			recordReply(t, "a", 0),
			recordReply(t, "b", 1),
		},
		events: &events,
	}

	out := make(chan *riff.InputFrame)
	sub := newTestSubscriber(client, out)

	done := make(chan error, 1)
	go func() { done <- sub.Run(context.Background()) }()

	var frames []*riff.InputFrame
	for i := 0; i < 2; i++ {
		f := <-out
		client.mu.Lock()
		*client.events = append(*client.events, fmt.Sprintf("frame:%d", i))
		client.mu.Unlock()
		frames = append(frames, f)
	}
	require.NoError(t, <-done)

	require.Len(t, frames, 2)
	assert.Equal(t, []byte("a"), frames[0].GetPayload())
	assert.Equal(t, []byte("b"), frames[1].GetPayload())
	assert.Equal(t, int32(0), frames[0].GetArgIndex())

	// Every offset is acknowledged before its frame is observable downstream.
	assert.Equal(t, []string{"ack:0", "frame:0", "ack:1", "frame:1"}, events)

	require.Len(t, client.acks, 2)
	assert.Equal(t, "test-group", client.acks[0].GetGroup())
	assert.Equal(t, "numbers", client.acks[0].GetTopic())
	assert.Equal(t, uint64(0), client.acks[0].GetOffset())
	assert.Equal(t, uint64(1), client.acks[1].GetOffset())
}

func TestSubscriber_SubscribeFailure(t *testing.T) {
	client := &fakeGatewayClient{subscribeErr: errors.New("unavailable")}
	sub := newTestSubscriber(client, make(chan *riff.InputFrame))

	err := sub.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
}

func TestSubscriber_RecordStreamFailure(t *testing.T) {
	client := &fakeGatewayClient{
		assignments: []*liiklus.SubscribeReply{assignmentReply(0)},
		recvErr:     errors.New("stream reset"),
	}
	sub := newTestSubscriber(client, make(chan *riff.InputFrame))

	err := sub.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
}

func TestSubscriber_SkipsEmptySubscribeReplies(t *testing.T) {
	client := &fakeGatewayClient{
		assignments: []*liiklus.SubscribeReply{
			{},
			assignmentReply(0),
		},
		records: []*liiklus.ReceiveReply{recordReply(t, "a", 0)},
	}

	out := make(chan *riff.InputFrame, 1)
	sub := newTestSubscriber(client, out)

	require.NoError(t, sub.Run(context.Background()))
	assert.Len(t, out, 1)
	assert.Len(t, client.acks, 1)
}

func TestSubscriber_ContextCancelledWhileForwarding(t *testing.T) {
	client := &fakeGatewayClient{
		assignments: []*liiklus.SubscribeReply{assignmentReply(0)},
		records:     []*liiklus.ReceiveReply{recordReply(t, "a", 0)},
	}

	// Nothing consumes out, so the forward blocks until the context goes.
	out := make(chan *riff.InputFrame)
	sub := newTestSubscriber(client, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sub.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
