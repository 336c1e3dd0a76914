package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry *prometheus.Registry

	ToolRequests *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	HTTPRequests *prometheus.CounterVec
}

// New registers the service collectors on a private registry so tests can
// build as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ToolRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_tool_requests_total",
				Help: "Outbound data source requests by tool and status code",
			},
			[]string{"tool", "code", "method"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "travel_tool_request_duration_seconds",
				Help:    "Latency of outbound data source requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool", "method"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_http_requests_total",
				Help: "Inbound HTTP requests by route and status code",
			},
			[]string{"route", "code", "method"},
		),
	}
}

// InstrumentTransport wraps next so every request made by tool is counted
// and timed.
func (m *Metrics) InstrumentTransport(tool string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"tool": tool}
	return promhttp.InstrumentRoundTripperCounter(
		m.ToolRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(m.ToolDuration.MustCurryWith(labels), next),
	)
}

func (m *Metrics) InstrumentHandler(route string, next http.HandlerFunc) http.HandlerFunc {
	return promhttp.InstrumentHandlerCounter(
		m.HTTPRequests.MustCurryWith(prometheus.Labels{"route": route}),
		next,
	)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
