package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegistry("rental-test", prometheus.NewRegistry())

	m.BookingCreated()
	m.PaymentRecorded("cash", decimal.RequireFromString("20.50"))
	m.PaymentRecorded("cash", decimal.NewFromInt(10))
	m.PaymentReversed("cash")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCreatedTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.PaymentsRecordedTotal.WithLabelValues("cash", "recorded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PaymentsRecordedTotal.WithLabelValues("cash", "reversed")))
	assert.InDelta(t, 30.5, testutil.ToFloat64(m.PaymentsAmountTotal), 1e-9)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.PaymentRecorded("card", decimal.NewFromInt(1))
		m.PaymentReversed("card")
	})
}
