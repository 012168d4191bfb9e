package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterFullSyncs          *prometheus.CounterVec
	CounterRecordsPushed      *prometheus.CounterVec
	CounterRecordsMerged      *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterReconnects         prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge
	GaugeOnline   prometheus.Gauge

	// histograms
	HistFullSyncDuration     prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("liftsync", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("liftsync", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterFullSyncs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "full_syncs",
		Help:      "The total number of full sync attempts, by outcome",
	}, []string{"outcome"})
	counterRecordsPushed := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "records_pushed",
		Help:      "The total number of single-record pushes, by outcome",
	}, []string{"outcome"})
	counterRecordsMerged := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "records_merged",
		Help:      "The total number of records written during reconciliation, by direction",
	}, []string{"direction"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterReconnects := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reconnects",
		Help:      "The total number of offline to online transitions",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeOnline := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "online",
		Help:      "Connectivity flag, 1 when the remote store is reachable",
	})

	histFullSyncDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "full_sync_duration_seconds",
		Help:      "Duration of full sync attempts",
		Buckets:   prometheus.DefBuckets,
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of served requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterFullSyncs:          counterFullSyncs,
		CounterRecordsPushed:      counterRecordsPushed,
		CounterRecordsMerged:      counterRecordsMerged,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterReconnects:         counterReconnects,
		GaugeRequests:             gaugeRequests,
		GaugeOnline:               gaugeOnline,
		HistFullSyncDuration:      histFullSyncDuration,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
