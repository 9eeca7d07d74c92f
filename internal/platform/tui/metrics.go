package tui

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-etris/internal/core"
)

// Metrics holds the Prometheus collectors for played games and SSH sessions.
// A nil *Metrics records nothing.
type Metrics struct {
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	gamesStarted   *prometheus.CounterVec
	gamesFinished  *prometheus.CounterVec
	linesCleared   *prometheus.CounterVec
	finalScore     *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// Passing nil uses a fresh registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "etris",
			Name:      "ssh_sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "etris",
			Name:      "ssh_sessions_total",
			Help:      "SSH sessions accepted since start.",
		}),
		gamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "etris",
			Name:      "games_started_total",
			Help:      "Games started, by variant.",
		}, []string{"variant"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "etris",
			Name:      "games_finished_total",
			Help:      "Games that reached game over, by variant.",
		}, []string{"variant"}),
		linesCleared: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "etris",
			Name:      "lines_cleared_total",
			Help:      "Rows cleared in finished games, by variant.",
		}, []string{"variant"}),
		finalScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "etris",
			Name:      "final_score",
			Help:      "Score at game over, by variant.",
			Buckets:   prometheus.ExponentialBuckets(25, 2, 10),
		}, []string{"variant"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.sessionsActive,
		m.sessionsTotal,
		m.gamesStarted,
		m.gamesFinished,
		m.linesCleared,
		m.finalScore,
	)
	return m
}

// Handler serves the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// SessionOpened records a new SSH session.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

// SessionClosed records a disconnected SSH session.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// GameStarted records a new or restarted game.
func (m *Metrics) GameStarted(variant string) {
	if m == nil {
		return
	}
	m.gamesStarted.WithLabelValues(variant).Inc()
}

// GameFinished records the final state of a game.
func (m *Metrics) GameFinished(variant string, state core.GameState) {
	if m == nil {
		return
	}
	m.gamesFinished.WithLabelValues(variant).Inc()
	m.linesCleared.WithLabelValues(variant).Add(float64(state.Lines))
	m.finalScore.WithLabelValues(variant).Observe(float64(state.Score))
}
