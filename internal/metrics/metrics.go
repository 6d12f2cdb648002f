package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AttemptsTotal counts purchase attempts by terminal outcome (succeeded or the error code)
	AttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funpump_purchase_attempts_total",
			Help: "Total number of purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	// AttemptDuration tracks the time from submit to a terminal state
	AttemptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "funpump_purchase_attempt_duration_seconds",
			Help:    "Purchase attempt duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"outcome"},
	)

	// AttemptsInFlight tracks attempts that have not reached a terminal state
	AttemptsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funpump_purchase_attempts_in_flight",
			Help: "Number of purchase attempts awaiting a terminal state",
		},
	)

	// ChainReads counts contract and node reads by method and status
	ChainReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funpump_chain_reads_total",
			Help: "Total number of chain reads",
		},
		[]string{"method", "status"},
	)

	// TransactionsSent counts purchase transactions handed to the wallet
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funpump_transactions_sent_total",
			Help: "Total number of purchase transactions sent",
		},
		[]string{"status"},
	)

	// ConfirmationWait tracks how long mined receipts took to appear
	ConfirmationWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "funpump_confirmation_wait_seconds",
			Help:    "Time spent waiting for a transaction receipt",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"status"},
	)

	// QuotesComputed counts purchase quotes derived from the bonding curve
	QuotesComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funpump_quotes_computed_total",
			Help: "Total number of purchase quotes computed",
		},
	)

	// SnapshotInvalidations counts cached sale snapshots dropped after an attempt settled
	SnapshotInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funpump_snapshot_invalidations_total",
			Help: "Total number of sale snapshot invalidations",
		},
	)

	// SalesTotal is the number of sales the factory reports
	SalesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funpump_sales_total",
			Help: "Number of sales created by the factory",
		},
	)

	// SalesOpen is the number of listed sales still accepting purchases
	SalesOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funpump_sales_open",
			Help: "Number of listed sales that are open",
		},
	)

	// ErrorsTotal counts errors by component and error class
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funpump_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_class"},
	)
)
