package metric

import "github.com/prometheus/client_golang/prometheus"

const namespace = "streaming_processor"

// Metrics holds the core pipeline metrics shared across components.
type Metrics struct {
	// RecordsReceived counts records pulled from input topics, per topic.
	RecordsReceived *prometheus.CounterVec
	// RecordsAcked counts offset acknowledgements issued, per topic.
	RecordsAcked *prometheus.CounterVec
	// FramesForwarded counts tagged frames handed to the windower.
	FramesForwarded prometheus.Counter
	// SessionsTotal counts invocation sessions driven to completion.
	SessionsTotal prometheus.Counter
	// SessionFrames observes the number of input frames per session.
	SessionFrames prometheus.Histogram
	// SessionDuration observes wall-clock time spent driving one session.
	SessionDuration prometheus.Histogram
	// OutputsPublished counts output frames published, per topic.
	OutputsPublished *prometheus.CounterVec
	// ErrorsTotal counts pipeline errors by component.
	ErrorsTotal *prometheus.CounterVec
}

// NewMetrics creates the core pipeline metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_received_total",
			Help:      "Records received from input topics",
		}, []string{"topic"}),
		RecordsAcked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_acked_total",
			Help:      "Offset acknowledgements issued to gateways",
		}, []string{"topic"}),
		FramesForwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_forwarded_total",
			Help:      "Tagged input frames handed to the windower",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Invocation sessions driven to completion",
		}),
		SessionFrames: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_frames",
			Help:      "Input frames per invocation session",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		SessionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall-clock time driving one invocation session",
			Buckets:   prometheus.DefBuckets,
		}),
		OutputsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outputs_published_total",
			Help:      "Output frames published to output topics",
		}, []string{"topic"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Pipeline errors by component",
		}, []string{"component"}),
	}
}
