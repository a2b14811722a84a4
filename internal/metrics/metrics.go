package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation Metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationsTotal,
			Help: HelpTextOperationsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOperationDuration,
			Help:    HelpTextOperationDuration,
			Buckets: OperationLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	OperationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOperationsInFlight,
			Help: HelpTextOperationsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	AlertsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAlertsSent,
			Help: HelpTextAlertsSent,
		},
		[]string{LabelType},
	)
)

// Catalog Metrics
var (
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
		[]string{LabelKind},
	)

	CatalogWarnings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogWarnings,
			Help: HelpTextCatalogWarnings,
		},
	)

	MilestonesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestones,
			Help: HelpTextMilestones,
		},
		[]string{LabelMethod},
	)
)
