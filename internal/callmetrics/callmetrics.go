// Package callmetrics implements a netcall.Observer exporting
// Prometheus metrics about calls.
package callmetrics

import (
	"io"
	"time"

	"github.com/ooni/netresult/pkg/netcall"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// summaryObjectives returns the summary objectives for the duration summary.
func summaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.25: 0.010,
		0.5:  0.010,
		0.75: 0.010,
		0.9:  0.010,
		0.99: 0.001,
	}
}

// Metrics contains the metrics we collect. Construct using [New].
type Metrics struct {
	// Deliveries counts the delivered results by outcome.
	Deliveries *prometheus.CounterVec

	// Inflight gauges the number of calls enqueued but not delivered yet.
	Inflight prometheus.Gauge

	// Duration summarizes the time between enqueue and delivery.
	Duration prometheus.Summary
}

var _ netcall.Observer = &Metrics{}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "netresult_deliveries_total",
			Help: "Total number of delivered results by outcome",
		}, []string{"outcome"}),

		Inflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "netresult_calls_inflight",
			Help: "The number of calls currently inflight",
		}),

		Duration: factory.NewSummary(prometheus.SummaryOpts{
			Name:       "netresult_call_duration_seconds",
			Help:       "Summarizes the time to deliver the result of a call (in seconds)",
			Objectives: summaryObjectives(),
		}),
	}
}

// CallStarted implements netcall.Observer.
func (m *Metrics) CallStarted() {
	m.Inflight.Inc()
}

// CallDelivered implements netcall.Observer.
func (m *Metrics) CallDelivered(outcome string, elapsed time.Duration) {
	m.Inflight.Dec()
	m.Deliveries.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

// WriteText writes the metrics gathered by g to w using the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
