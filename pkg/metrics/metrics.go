package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP-метрики входящих запросов
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики исходящих вызовов к удалённым сервисам
	RemoteRequestsTotal   *prometheus.CounterVec
	RemoteRequestDuration *prometheus.HistogramVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		RemoteRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "remote_requests_total",
			Help:        "Total number of requests to remote services",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		RemoteRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "remote_request_duration_seconds",
			Help:        "Remote service request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),
	}
}

// ObserveHTTPRequest записывает метрики обработанного HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveRemoteRequest записывает метрики исходящего вызова
func (m *Metrics) ObserveRemoteRequest(target, method string, status int, duration time.Duration) {
	m.RemoteRequestsTotal.WithLabelValues(target, method, strconv.Itoa(status)).Inc()
	m.RemoteRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}
