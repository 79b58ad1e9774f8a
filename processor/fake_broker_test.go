package processor

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/resolver"
	"google.golang.org/grpc/test/bufconn"

	"github.com/trisberg/streaming-processor/brokerclient"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
)

func init() {
	// Gateway endpoints in these tests are bufconn names, not resolvable
	// hosts.
	resolver.SetDefaultScheme("passthrough")
}

// fakeBroker is an in-process gateway. Each topic's scripted records are
// streamed once per subscription; acks and publishes are recorded along with
// a flat event log for ordering assertions.
type fakeBroker struct {
	liiklus.UnimplementedLiiklusServiceServer

	mu        sync.Mutex
	records   map[string][]*liiklus.ReceiveReply_Record
	acks      []*liiklus.AckRequest
	published []*liiklus.PublishRequest
	events    []string
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{records: make(map[string][]*liiklus.ReceiveReply_Record)}
}

func (b *fakeBroker) Subscribe(req *liiklus.SubscribeRequest, stream liiklus.LiiklusService_SubscribeServer) error {
	// The session id carries the topic so Receive can find the scripted
	// records; the real protocol treats it as opaque.
	err := stream.Send(&liiklus.SubscribeReply{
		Reply: &liiklus.SubscribeReply_Assignment{
			Assignment: &liiklus.Assignment{SessionId: req.GetTopic(), Partition: 0},
		},
	})
	if err != nil {
		return err
	}
	<-stream.Context().Done()
	return stream.Context().Err()
}

func (b *fakeBroker) Receive(req *liiklus.ReceiveRequest, stream liiklus.LiiklusService_ReceiveServer) error {
	topicName := req.GetAssignment().GetSessionId()
	b.mu.Lock()
	records := b.records[topicName]
	b.mu.Unlock()

	for _, record := range records {
		err := stream.Send(&liiklus.ReceiveReply{
			Reply: &liiklus.ReceiveReply_Record_{Record: record},
		})
		if err != nil {
			return err
		}
	}
	<-stream.Context().Done()
	return stream.Context().Err()
}

func (b *fakeBroker) Ack(ctx context.Context, req *liiklus.AckRequest) (*empty.Empty, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.acks = append(b.acks, req)
	b.events = append(b.events, fmt.Sprintf("ack:%s:%d", req.GetTopic(), req.GetOffset()))
	return &empty.Empty{}, nil
}

func (b *fakeBroker) Publish(ctx context.Context, req *liiklus.PublishRequest) (*liiklus.PublishReply, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, req)
	b.events = append(b.events, "publish:"+req.GetTopic())
	return &liiklus.PublishReply{Partition: 0, Offset: uint64(len(b.published) - 1)}, nil
}

func (b *fakeBroker) publishedCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.published)
}

func (b *fakeBroker) snapshot() (acks []*liiklus.AckRequest, published []*liiklus.PublishRequest, events []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(acks, b.acks...), append(published, b.published...), append(events, b.events...)
}

// newGatewayPool serves each fake broker over bufconn under its endpoint name
// and returns a pool dialed through the in-memory transport.
func newGatewayPool(t *testing.T, brokers map[string]*fakeBroker) *brokerclient.Pool {
	t.Helper()

	listeners := make(map[string]*bufconn.Listener, len(brokers))
	gateways := make([]string, 0, len(brokers))
	for gw, broker := range brokers {
		lis := bufconn.Listen(1 << 20)
		srv := grpc.NewServer()
		liiklus.RegisterLiiklusServiceServer(srv, broker)
		go func() { _ = srv.Serve(lis) }()
		t.Cleanup(srv.Stop)
		listeners[gw] = lis
		gateways = append(gateways, gw)
	}

	dialer := func(ctx context.Context, addr string) (net.Conn, error) {
		lis, ok := listeners[addr]
		if !ok {
			return nil, fmt.Errorf("no bufconn listener for %s", addr)
		}
		return lis.DialContext(ctx)
	}

	pool, err := brokerclient.NewPool(gateways,
		brokerclient.WithDialOptions(grpc.WithContextDialer(dialer)))
	if err != nil {
		t.Fatalf("constructing gateway pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}
