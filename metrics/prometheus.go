package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Proxy = (*PrometheusProxy)(nil)

// PrometheusProxy exports tree metrics as prometheus collectors registered
// with the given registerer.
type PrometheusProxy struct {
	counters  *prometheus.CounterVec
	gauges    *prometheus.GaugeVec
	durations *prometheus.HistogramVec
}

func NewPrometheusProxy(reg prometheus.Registerer) *PrometheusProxy {
	p := &PrometheusProxy{
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treemap_ops_total",
			Help: "tree operations by kind",
		}, []string{"namespace", "op"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treemap_state",
			Help: "tree size and height",
		}, []string{"namespace", "name"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treemap_op_duration_seconds",
			Help:    "tree operation latency",
			Buckets: prometheus.ExponentialBuckets(50e-9, 2, 14),
		}, []string{"namespace", "op"}),
	}
	reg.MustRegister(p.counters, p.gauges, p.durations)
	return p
}

func (p *PrometheusProxy) IncrCounter(val float32, keys ...string) {
	ns, name, ok := split(keys)
	if !ok {
		return
	}
	p.counters.WithLabelValues(ns, name).Add(float64(val))
}

func (p *PrometheusProxy) SetGauge(val float32, keys ...string) {
	ns, name, ok := split(keys)
	if !ok {
		return
	}
	p.gauges.WithLabelValues(ns, name).Set(float64(val))
}

func (p *PrometheusProxy) MeasureSince(start time.Time, keys ...string) {
	ns, name, ok := split(keys)
	if !ok {
		return
	}
	p.durations.WithLabelValues(ns, name).Observe(time.Since(start).Seconds())
}

func split(keys []string) (string, string, bool) {
	if len(keys) != 2 {
		return "", "", false
	}
	return keys[0], keys[1], true
}
