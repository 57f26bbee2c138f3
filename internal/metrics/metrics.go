package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payment_ingestor"

// Outcome labels for FilesProcessed.
const (
	OutcomeFullSaved  = "full_saved"
	OutcomePartial    = "partial"
	OutcomeEmpty      = "empty"
	OutcomeIneligible = "ineligible"
	OutcomeFailed     = "failed"
)

var (
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_processed_total",
		Help:      "Files handled by the batch processor, labeled by outcome",
	}, []string{"outcome"})

	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_processed_total",
		Help:      "Persisted payments, labeled by final status",
	}, []string{"status"})

	InvalidLines = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_lines_total",
		Help:      "Lines rejected by the record parser",
	})

	FileProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "file_processing_duration_seconds",
		Help:      "Time spent processing a single file",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})

	ReportsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_written_total",
		Help:      "Reports written, labeled by destination and result",
	}, []string{"destination", "result"})
)
