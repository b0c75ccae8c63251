// Package metrics exposes prometheus counters for the farm advisor console.
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "farm_advisor"

// Metrics groups the counters updated by the collector and the console.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	InputsAccepted *prometheus.CounterVec
	InputsRejected *prometheus.CounterVec
	Advisories     *prometheus.CounterVec
	MenuChoices    *prometheus.CounterVec
	BusPublished   *prometheus.CounterVec
}

// New registers the counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InputsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_accepted_total",
			Help:      "Operator inputs accepted, by field.",
		}, []string{"field"}),
		InputsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_rejected_total",
			Help:      "Operator inputs rejected, by field and reason.",
		}, []string{"field", "reason"}),
		Advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisories_total",
			Help:      "Advisories rendered, by kind and tier.",
		}, []string{"kind", "tier"}),
		MenuChoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_choices_total",
			Help:      "Menu selections, by choice; unrecognized input is counted as \"invalid\".",
		}, []string{"choice"}),
		BusPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bus_events_total",
			Help:      "Advisory events handed to the bus, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.InputsAccepted, m.InputsRejected, m.Advisories, m.MenuChoices, m.BusPublished)
	return m
}

func (m *Metrics) InputAccepted(field string) {
	if m == nil {
		return
	}
	m.InputsAccepted.WithLabelValues(field).Inc()
}

func (m *Metrics) InputRejected(field, reason string) {
	if m == nil {
		return
	}
	m.InputsRejected.WithLabelValues(field, reason).Inc()
}

func (m *Metrics) AdvisoryRendered(kind, tier string) {
	if m == nil {
		return
	}
	m.Advisories.WithLabelValues(kind, tier).Inc()
}

func (m *Metrics) MenuChoice(choice string) {
	if m == nil {
		return
	}
	m.MenuChoices.WithLabelValues(choice).Inc()
}

// BusOutcome counts one advisory event: "published", "duplicate" or "failed".
func (m *Metrics) BusOutcome(outcome string) {
	if m == nil {
		return
	}
	m.BusPublished.WithLabelValues(outcome).Inc()
}

// Health is the /healthz body. Status is "ok", "degraded" or "down".
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthFunc reports the current health of the process.
type HealthFunc func() Health

// Server serves /metrics and /healthz until its context is cancelled.
type Server struct {
	hs     *http.Server
	logger *zap.Logger
	health HealthFunc
}

func NewServer(addr string, g prometheus.Gatherer, logger *zap.Logger) *Server {
	s := &Server{logger: logger}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", s.serveHealth)
	s.hs = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// WithHealth sets the /healthz source; without one the endpoint always reports ok.
func (s *Server) WithHealth(fn HealthFunc) *Server {
	s.health = fn
	return s
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	h := Health{Status: "ok"}
	if s.health != nil {
		h = s.health()
	}
	w.Header().Set("Content-Type", "application/json")
	if h.Status == "down" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(h)
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// Start binds the listener and serves in the background. The server shuts down when ctx ends;
// the returned channel is closed once it has stopped.
func (s *Server) Start(ctx context.Context) (<-chan struct{}, error) {
	ln, err := net.Listen("tcp", s.hs.Addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", s.hs.Addr, err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.logger.Info("metrics: listening", zap.String("addr", ln.Addr().String()))
		if err := s.hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics: server error", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.hs.Shutdown(sctx)
	}()
	return done, nil
}
