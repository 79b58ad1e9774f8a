package processor

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/metric"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
	"github.com/trisberg/streaming-processor/rpc/riff"
	"github.com/trisberg/streaming-processor/topic"
)

// Subscriber pulls records from one input topic under the processor's
// consumer group. It subscribes, waits for partition assignments, and runs
// one receive loop per assignment. Assignments for the same topic are
// processed concurrently with no cross-partition ordering; within one
// partition, receive order is preserved.
type Subscriber struct {
	topic   topic.Address
	group   string
	client  liiklus.LiiklusServiceClient
	tagger  *Tagger
	out     chan<- *riff.InputFrame
	logger  *slog.Logger
	metrics *metric.Metrics
}

// SubscriberDeps holds the runtime dependencies for one input subscription
type SubscriberDeps struct {
	Topic   topic.Address
	Group   string
	Client  liiklus.LiiklusServiceClient
	Tagger  *Tagger
	Out     chan<- *riff.InputFrame
	Logger  *slog.Logger
	Metrics *metric.Metrics
}

// NewSubscriber creates a subscriber for one input topic
func NewSubscriber(deps SubscriberDeps) *Subscriber {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{
		topic:   deps.Topic,
		group:   deps.Group,
		client:  deps.Client,
		tagger:  deps.Tagger,
		out:     deps.Out,
		logger:  logger.With("topic", deps.Topic.String(), "group", deps.Group),
		metrics: deps.Metrics,
	}
}

// Run subscribes and processes assignments until the context is cancelled or
// a stream fails. New subscriptions start at the latest offset: the
// processor handles live traffic, not history.
func (s *Subscriber) Run(ctx context.Context) error {
	sub, err := s.client.Subscribe(ctx, &liiklus.SubscribeRequest{
		Topic:           s.topic.Topic,
		Group:           s.group,
		AutoOffsetReset: liiklus.SubscribeRequest_LATEST,
	})
	if err != nil {
		return errors.WrapTransient(err, "subscriber", "Run", "subscribe call")
	}

	s.logger.Info("subscribed to input topic")

	g, ctx := errgroup.WithContext(ctx)
	for {
		reply, err := sub.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return errors.WrapTransient(err, "subscriber", "Run", "subscription stream")
		}

		assignment := reply.GetAssignment()
		if assignment == nil {
			continue
		}

		s.logger.Info("partition assigned", "partition", assignment.GetPartition())
		g.Go(func() error {
			return s.receive(ctx, assignment)
		})
	}

	return g.Wait()
}

// receive pulls the live record sequence for one partition assignment. Each
// record is acknowledged immediately upon receipt, before it is observable
// downstream: the delivery guarantee is at-most-once toward durability.
func (s *Subscriber) receive(ctx context.Context, assignment *liiklus.Assignment) error {
	stream, err := s.client.Receive(ctx, &liiklus.ReceiveRequest{Assignment: assignment})
	if err != nil {
		return errors.WrapTransient(err, "subscriber", "receive", "receive call")
	}

	for {
		reply, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.WrapTransient(err, "subscriber", "receive", "record stream")
		}

		record := reply.GetRecord()
		if record == nil {
			continue
		}

		if s.metrics != nil {
			s.metrics.RecordsReceived.WithLabelValues(s.topic.String()).Inc()
		}

		if err := s.ack(ctx, assignment, record); err != nil {
			return err
		}

		frame, err := s.tagger.Tag(record, s.topic)
		if err != nil {
			return err
		}

		select {
		case s.out <- frame:
			if s.metrics != nil {
				s.metrics.FramesForwarded.Inc()
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// ack acknowledges one consumed record offset for the group.
func (s *Subscriber) ack(ctx context.Context, assignment *liiklus.Assignment, record *liiklus.ReceiveReply_Record) error {
	_, err := s.client.Ack(ctx, &liiklus.AckRequest{
		Group:     s.group,
		Topic:     s.topic.Topic,
		Partition: assignment.GetPartition(),
		Offset:    record.GetOffset(),
	})
	if err != nil {
		return errors.WrapTransient(err, "subscriber", "ack", "offset acknowledgement")
	}

	s.logger.Debug("acked record",
		"partition", assignment.GetPartition(),
		"offset", record.GetOffset())
	if s.metrics != nil {
		s.metrics.RecordsAcked.WithLabelValues(s.topic.String()).Inc()
	}
	return nil
}
