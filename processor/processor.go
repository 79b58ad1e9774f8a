package processor

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trisberg/streaming-processor/brokerclient"
	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/metric"
	"github.com/trisberg/streaming-processor/rpc/riff"
)

// Deps holds the runtime dependencies of the pipeline driver
type Deps struct {
	Binding  *Binding
	Group    string
	Window   time.Duration
	Capacity int
	Pool     *brokerclient.Pool
	Function riff.RiffClient
	Logger   *slog.Logger
	Registry *metric.MetricsRegistry
}

// Processor is the pipeline driver: it wires the input subscribers, the
// windower, the invoker, and the router into one long-running process and
// blocks until the input streams complete or the context is cancelled.
type Processor struct {
	binding     *Binding
	group       string
	window      time.Duration
	capacity    int
	pool        *brokerclient.Pool
	subscribers []*Subscriber
	invoker     *Invoker
	router      *Router
	logger      *slog.Logger
	metrics     *metric.Metrics

	frames chan *riff.InputFrame
}

// New constructs the pipeline from its dependencies. Every input's gateway
// must already be present in the pool; a miss here is a configuration
// invariant violation and fails construction.
func New(deps Deps) (*Processor, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var metrics *metric.Metrics
	if deps.Registry != nil {
		metrics = deps.Registry.CoreMetrics()
	}

	p := &Processor{
		binding:  deps.Binding,
		group:    deps.Group,
		window:   deps.Window,
		capacity: deps.Capacity,
		pool:     deps.Pool,
		invoker:  NewInvoker(deps.Function, deps.Binding, logger),
		router:   NewRouter(deps.Binding, deps.Pool, logger, metrics),
		logger:   logger,
		metrics:  metrics,
		frames:   make(chan *riff.InputFrame),
	}

	tagger := NewTagger(deps.Binding)
	for _, input := range deps.Binding.Inputs {
		client, err := deps.Pool.Get(input.Gateway)
		if err != nil {
			return nil, errors.Wrap(err, "processor", "New", "input gateway lookup")
		}
		p.subscribers = append(p.subscribers, NewSubscriber(SubscriberDeps{
			Topic:   input,
			Group:   deps.Group,
			Client:  client.Service(),
			Tagger:  tagger,
			Out:     p.frames,
			Logger:  logger,
			Metrics: metrics,
		}))
	}

	return p, nil
}

// Run drives the pipeline until the input streams complete, the context is
// cancelled, or a failure surfaces. It is the main loop of the process, not
// a background task: it blocks its caller. A mid-stream RPC failure
// terminates the run; there is no session replay.
func (p *Processor) Run(ctx context.Context) error {
	p.logger.Info("pipeline starting",
		"inputs", len(p.binding.Inputs),
		"outputs", len(p.binding.Outputs),
		"group", p.group,
		"window", p.window)

	g, ctx := errgroup.WithContext(ctx)

	// Input subscriptions run concurrently and share the merge channel.
	// When the last subscriber returns, the merged stream is complete.
	subs, subCtx := errgroup.WithContext(ctx)
	for _, sub := range p.subscribers {
		sub := sub
		subs.Go(func() error {
			return sub.Run(subCtx)
		})
	}
	g.Go(func() error {
		defer close(p.frames)
		return subs.Wait()
	})

	windows := make(chan Window)
	windower := NewWindower(p.window, p.capacity)
	g.Go(func() error {
		defer close(windows)
		err := windower.Run(ctx, p.frames, windows)
		if err == context.Canceled || err == context.DeadlineExceeded {
			return nil
		}
		return err
	})

	// Sessions are strictly sequential: one window's invocation and all of
	// its publications finish before the next window is taken.
	g.Go(func() error {
		for window := range windows {
			if err := p.runSession(ctx, window); err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if err != nil && ctx.Err() != nil && isCancellation(err) {
		err = nil
	}
	if err != nil {
		p.logger.Error("pipeline terminated", "error", err, "class", errors.Classify(err).String())
		return err
	}
	p.logger.Info("pipeline completed")
	return nil
}

// runSession drives one invocation session and routes its outputs.
func (p *Processor) runSession(ctx context.Context, window Window) error {
	logger := p.logger.With("session", window.ID)
	start := time.Now()

	frames, err := p.invoker.Drive(ctx, window, func(frame *riff.OutputFrame) error {
		return p.router.Route(ctx, frame)
	})
	if err != nil {
		if p.metrics != nil {
			p.metrics.ErrorsTotal.WithLabelValues("session").Inc()
		}
		return errors.Wrap(err, "processor", "runSession", "invocation session")
	}

	if p.metrics != nil {
		p.metrics.SessionsTotal.Inc()
		p.metrics.SessionFrames.Observe(float64(frames))
		p.metrics.SessionDuration.Observe(time.Since(start).Seconds())
	}
	logger.Debug("session drained", "frames", frames, "took", time.Since(start))
	return nil
}

// isCancellation reports whether err is the echo of our own context being
// cancelled, either directly or as a gRPC status from an in-flight call.
func isCancellation(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	return status.Code(err) == codes.Canceled
}
