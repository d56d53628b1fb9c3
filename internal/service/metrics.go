package service

import (
	"time"

	"contact-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the contact service.
// All methods are no-ops on a nil *Metrics.
type Metrics struct {
	submissions    *prometheus.CounterVec
	verifyDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		verifyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recaptcha_verify_duration_seconds",
			Help:    "Duration of reCAPTCHA siteverify calls.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"result"}),
	}

	reg.MustRegister(m.submissions, m.verifyDuration)

	return m
}

// ObserveOutcome counts one finished submission
func (m *Metrics) ObserveOutcome(kind domain.OutcomeKind) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind.String()).Inc()
}

// ObserveVerify records the duration of one siteverify call
func (m *Metrics) ObserveVerify(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.verifyDuration.WithLabelValues(result).Observe(d.Seconds())
}
