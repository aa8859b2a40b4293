package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortener"

const (
	resultMinted   = "minted"
	resultReused   = "reused"
	resultFound    = "found"
	resultNotFound = "not_found"
)

// MappingCounter отдает текущее число сохраненных соответствий
type MappingCounter interface {
	Count() int
}

// Metrics набор коллекторов сервиса.
// Регистрируется в собственном registry, поэтому несколько экземпляров не конфликтуют.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        prometheus.Gauge

	// Domain
	codesTotal    *prometheus.CounterVec
	resolvesTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы.
// mappings может быть nil, тогда gauge с числом соответствий не регистрируется.
func New(mappings MappingCounter) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_inflight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		codesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "codes_total",
				Help:      "Shorten calls by outcome: a new code minted or an existing one reused.",
			},
			[]string{"result"},
		),
		resolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolves_total",
				Help:      "Resolve calls by outcome.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.inflight,
		m.codesTotal,
		m.resolvesTotal,
	)

	if mappings != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mappings",
				Help:      "Number of stored URL to code mappings.",
			},
			func() float64 { return float64(mappings.Count()) },
		))
	}

	return m
}

// Registry возвращает registry с коллекторами сервиса
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) CodeMinted() {
	m.codesTotal.WithLabelValues(resultMinted).Inc()
}

func (m *Metrics) CodeReused() {
	m.codesTotal.WithLabelValues(resultReused).Inc()
}

func (m *Metrics) Resolved(found bool) {
	result := resultNotFound
	if found {
		result = resultFound
	}
	m.resolvesTotal.WithLabelValues(result).Inc()
}

// RequestStarted увеличивает число запросов в обработке
func (m *Metrics) RequestStarted() {
	m.inflight.Inc()
}

// RequestFinished учитывает завершенный запрос
func (m *Metrics) RequestFinished(method, route string, status int, duration time.Duration) {
	m.inflight.Dec()
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
