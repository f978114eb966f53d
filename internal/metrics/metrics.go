package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Ledger
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_transactions_total",
			Help: "Total ledger transactions written",
		},
		[]string{"type"}, // deposit|withdrawal|investment|refund
	)
	InvestmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investments_total",
			Help: "Total successful investments",
		},
		[]string{"source"}, // wallet|direct
	)

	// Withdrawal workflow
	WithdrawalRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "withdrawal_requests_total",
			Help: "Total withdrawal requests created",
		},
	)
	WithdrawalDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "withdrawal_decisions_total",
			Help: "Total withdrawal workflow decisions",
		},
		[]string{"decision"}, // approved|rejected|completed
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(TransactionsTotal)
	prometheus.MustRegister(InvestmentsTotal)
	prometheus.MustRegister(WithdrawalRequestsTotal)
	prometheus.MustRegister(WithdrawalDecisionsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
