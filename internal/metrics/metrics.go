package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wallet_ledger"

// Auth attempt results
const (
	AuthCreated          = "created"
	AuthReturning        = "returning"
	AuthBadRequest       = "bad_request"
	AuthInvalidSignature = "invalid_signature"
	AuthError            = "error"
)

// Ingestion outcomes
const (
	IngestCreated         = "created"
	IngestAlreadyRecorded = "already_recorded"
	IngestFailedOnChain   = "failed_on_chain"
	IngestNotFound        = "not_found"
	IngestLedgerError     = "ledger_error"
	IngestError           = "error"
)

var (
	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Wallet signature authentication attempts by result.",
	}, []string{"result"})

	ingestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestions_total",
		Help:      "Transaction ingestion requests by outcome.",
	}, []string{"outcome"})

	ledgerLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ledger_lookup_duration_seconds",
		Help:      "Latency of transaction lookups against the ledger RPC.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// RecordAuth counts an authentication attempt
func RecordAuth(result string) {
	authAttempts.WithLabelValues(result).Inc()
}

// RecordIngestion counts an ingestion request
func RecordIngestion(outcome string) {
	ingestions.WithLabelValues(outcome).Inc()
}

// ObserveLedgerLookup records the latency of a ledger RPC lookup
func ObserveLedgerLookup(result string, elapsed time.Duration) {
	ledgerLookupSeconds.WithLabelValues(result).Observe(elapsed.Seconds())
}
