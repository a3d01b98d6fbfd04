// Package metrics exposes Prometheus counters for claim and dispatch outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the usecase layer depends on.
type Recorder interface {
	RecordClaim(purpose, outcome string)
	RecordDispatch(purpose, outcome string)
	RecordThrottled(route string)
}

type Collector struct {
	claims     *prometheus.CounterVec
	dispatches *prometheus.CounterVec
	throttled  *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "talent_mailer_email_claims_total",
			Help: "Email send claim attempts by purpose and outcome",
		}, []string{"purpose", "outcome"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "talent_mailer_email_dispatches_total",
			Help: "Email send requests by purpose and final outcome",
		}, []string{"purpose", "outcome"}),
		throttled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "talent_mailer_throttled_requests_total",
			Help: "Requests rejected by the abuse throttle",
		}, []string{"route"}),
	}

	reg.MustRegister(c.claims, c.dispatches, c.throttled)

	return c
}

func (c *Collector) RecordClaim(purpose, outcome string) {
	c.claims.WithLabelValues(purpose, outcome).Inc()
}

func (c *Collector) RecordDispatch(purpose, outcome string) {
	c.dispatches.WithLabelValues(purpose, outcome).Inc()
}

func (c *Collector) RecordThrottled(route string) {
	c.throttled.WithLabelValues(route).Inc()
}

// Handler serves the gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type Nop struct{}

func (Nop) RecordClaim(string, string)    {}
func (Nop) RecordDispatch(string, string) {}
func (Nop) RecordThrottled(string)        {}
