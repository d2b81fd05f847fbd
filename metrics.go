package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	logins   *prometheus.CounterVec
	intents  *prometheus.CounterVec
	clients  prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "artaura",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template, method and status code.",
		}, []string{"route", "method", "code"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "artaura",
			Name:      "logins_total",
			Help:      "Login attempts by method and outcome.",
		}, []string{"method", "result"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "artaura",
			Name:      "intents_total",
			Help:      "User intents by action.",
		}, []string{"action"}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "artaura",
			Name:      "websocket_clients",
			Help:      "Connected websocket clients.",
		}),
	}
	m.registry.MustRegister(m.requests, m.logins, m.intents, m.clients)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument counts requests per matched route.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		counter := m.requests.MustCurryWith(prometheus.Labels{"route": route})
		promhttp.InstrumentHandlerCounter(counter, next).ServeHTTP(w, r)
	})
}
