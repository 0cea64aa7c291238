package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
)

// Manager holds the custom Prometheus metrics for the moderation core.
// Every consumer accepts a nil *Manager and skips recording, so metrics
// stay optional.
type Manager struct {
	Registry                *prometheus.Registry
	ModerationActionsTotal  *prometheus.CounterVec
	IllegalTransitionsTotal *prometheus.CounterVec
	MessagesSentTotal       prometheus.Counter
	RepliesDeliveredTotal   prometheus.Counter
	SearchesTotal           *prometheus.CounterVec
}

// NewManager initializes and registers the custom metrics on a private
// registry.
func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	moderationActionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions applied, by entity kind and action.",
	}, []string{"entity", "action"})

	illegalTransitionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "illegal_transitions_total",
		Help:      "Total number of rejected transitions, by entity kind and action.",
	}, []string{"entity", "action"})

	messagesSentTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages sent by the local user.",
	})

	repliesDeliveredTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_delivered_total",
		Help:      "Total number of simulated counterparty replies delivered.",
	})

	searchesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of filter queries executed, by entity kind.",
	}, []string{"entity"})

	registry.MustRegister(
		moderationActionsTotal,
		illegalTransitionsTotal,
		messagesSentTotal,
		repliesDeliveredTotal,
		searchesTotal,
		prometheus.NewGoCollector(),
	)

	return &Manager{
		Registry:                registry,
		ModerationActionsTotal:  moderationActionsTotal,
		IllegalTransitionsTotal: illegalTransitionsTotal,
		MessagesSentTotal:       messagesSentTotal,
		RepliesDeliveredTotal:   repliesDeliveredTotal,
		SearchesTotal:           searchesTotal,
	}
}

// RecordAction increments the applied-actions counter. Safe on nil.
func (m *Manager) RecordAction(entity, action string) {
	if m == nil {
		return
	}
	m.ModerationActionsTotal.WithLabelValues(entity, action).Inc()
}

// RecordIllegal increments the rejected-transitions counter. Safe on nil.
func (m *Manager) RecordIllegal(entity, action string) {
	if m == nil {
		return
	}
	m.IllegalTransitionsTotal.WithLabelValues(entity, action).Inc()
}

// RecordMessageSent increments the sent-messages counter. Safe on nil.
func (m *Manager) RecordMessageSent() {
	if m == nil {
		return
	}
	m.MessagesSentTotal.Inc()
}

// RecordReplyDelivered increments the delivered-replies counter. Safe on nil.
func (m *Manager) RecordReplyDelivered() {
	if m == nil {
		return
	}
	m.RepliesDeliveredTotal.Inc()
}

// RecordSearch increments the search counter. Safe on nil.
func (m *Manager) RecordSearch(entity string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(entity).Inc()
}

// StartServer exposes the registry on /metrics. It blocks, so callers
// run it on its own goroutine. An empty port disables the server.
func StartServer(port string, appLogger *logger.Logger, registry *prometheus.Registry) error {
	if port == "" {
		appLogger.Info("metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	appLogger.Info("metrics server starting", zap.String("port", port), zap.String("path", "/metrics"))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
	return server.ListenAndServe()
}
