package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuth(t *testing.T) {
	before := testutil.ToFloat64(authAttempts.WithLabelValues(AuthCreated))
	RecordAuth(AuthCreated)
	RecordAuth(AuthCreated)
	assert.Equal(t, before+2, testutil.ToFloat64(authAttempts.WithLabelValues(AuthCreated)))
}

func TestRecordIngestion(t *testing.T) {
	before := testutil.ToFloat64(ingestions.WithLabelValues(IngestAlreadyRecorded))
	RecordIngestion(IngestAlreadyRecorded)
	assert.Equal(t, before+1, testutil.ToFloat64(ingestions.WithLabelValues(IngestAlreadyRecorded)))
}

func TestObserveLedgerLookup(t *testing.T) {
	ObserveLedgerLookup("ok", 150*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(ledgerLookupSeconds))
}
