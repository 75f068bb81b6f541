// Package httpmetrics оборачивает http.RoundTripper для сбора метрик
// исходящих вызовов к удалённым сервисам.
package httpmetrics

import (
	"net/http"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/metrics"
)

// Transport http.RoundTripper, записывающий метрики каждого вызова
type Transport struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
	target  string
}

// NewTransport создает инструментированный транспорт.
// target — имя удалённого сервиса для метки метрик.
func NewTransport(base http.RoundTripper, m *metrics.Metrics, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:    base,
		metrics: m,
		target:  target,
	}
}

// RoundTrip выполняет запрос и записывает метрики.
// Ошибки транспорта записываются со статусом 0.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.metrics.ObserveRemoteRequest(t.target, req.Method, status, duration)

	return resp, err
}
