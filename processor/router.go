package processor

import (
	"context"
	"log/slog"

	"github.com/trisberg/streaming-processor/brokerclient"
	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/message"
	"github.com/trisberg/streaming-processor/metric"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
	"github.com/trisberg/streaming-processor/rpc/riff"
)

// Router publishes the function's output frames to their destination
// topics. The destination is the configured output at the frame's embedded
// result index; the frame is re-wrapped in the at-rest envelope before
// publication.
type Router struct {
	binding *Binding
	pool    *brokerclient.Pool
	logger  *slog.Logger
	metrics *metric.Metrics
}

// NewRouter creates a router over the binding and the shared client pool
func NewRouter(binding *Binding, pool *brokerclient.Pool, logger *slog.Logger, metrics *metric.Metrics) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{binding: binding, pool: pool, logger: logger, metrics: metrics}
}

// Route publishes one output frame. A result index outside the configured
// outputs is an invariant violation between configuration and live data and
// surfaces as an error rather than being dropped.
func (r *Router) Route(ctx context.Context, frame *riff.OutputFrame) error {
	dest, err := r.binding.Output(int(frame.GetResultIndex()))
	if err != nil {
		return err
	}

	client, err := r.pool.Get(dest.Gateway)
	if err != nil {
		return err
	}

	value, err := message.Encode(&message.Message{
		Payload:     frame.GetPayload(),
		ContentType: frame.GetContentType(),
		Headers:     frame.GetHeaders(),
	})
	if err != nil {
		return err
	}

	if _, err := client.Service().Publish(ctx, &liiklus.PublishRequest{
		Topic: dest.Topic,
		Value: value,
	}); err != nil {
		return errors.WrapTransient(err, "router", "Route", "publish call")
	}

	r.logger.Debug("published output frame",
		"topic", dest.String(),
		"result_index", frame.GetResultIndex())
	if r.metrics != nil {
		r.metrics.OutputsPublished.WithLabelValues(dest.String()).Inc()
	}
	return nil
}
