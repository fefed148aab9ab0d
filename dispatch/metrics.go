package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "bank"
	metricsSubsystem = "dispatch"
)

type metrics struct {
	calls *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, supply func() float64) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "calls_total",
			Help:      "Number of dispatched contract calls by method and status.",
		}, []string{"method", "status"}),
	}

	supplyGauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "total_supply",
		Help:      "Current total supply of the bank contract.",
	}, supply)

	for _, c := range []prometheus.Collector{m.calls, supplyGauge} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(method string, ok bool) {
	status := "failure"
	if ok {
		status = "success"
	}
	m.calls.WithLabelValues(method, status).Inc()
}
