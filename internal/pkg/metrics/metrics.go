package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scrape-cycle and reconciliation metrics, exposed on /metrics.
var (
	ScrapeCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "scraper",
		Name:      "cycles_total",
		Help:      "Scrape cycles by outcome.",
	}, []string{"outcome"})

	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "scraper",
		Name:      "provider_requests_total",
		Help:      "Upstream provider calls by provider and outcome.",
	}, []string{"provider", "outcome"})

	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fairway",
		Subsystem: "scraper",
		Name:      "provider_request_seconds",
		Help:      "Upstream provider call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})

	ReconcileBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "reconcile",
		Name:      "batches_total",
		Help:      "Reconciliation batches by outcome.",
	}, []string{"outcome"})

	ReconcileSlotsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "reconcile",
		Name:      "slots_upserted_total",
		Help:      "Slots inserted or reaffirmed by reconciliation.",
	})

	ReconcileSlotsInvalidated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "reconcile",
		Name:      "slots_invalidated_total",
		Help:      "Slots flipped to unavailable by the invalidate phase.",
	})

	ReconcileRecordsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "reconcile",
		Name:      "records_dropped_total",
		Help:      "Malformed records dropped before reconciliation.",
	})

	SweepDeletedSlots = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway",
		Subsystem: "sweep",
		Name:      "deleted_slots_total",
		Help:      "Expired slots removed by the retention sweeper.",
	})
)
