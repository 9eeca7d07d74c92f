package tui

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-etris/internal/core"
)

func TestMetricsGames(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.GameStarted("etris")
	m.GameStarted("etris")
	m.GameStarted("etris_mini")
	m.GameFinished("etris", core.GameState{Score: 150, Lines: 3, GameOver: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gamesStarted.WithLabelValues("etris")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesStarted.WithLabelValues("etris_mini")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesFinished.WithLabelValues("etris")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.linesCleared.WithLabelValues("etris")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.finalScore))
}

func TestMetricsSessions(t *testing.T) {
	m := NewMetrics(nil)

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionClosed()
		m.GameStarted("etris")
		m.GameFinished("etris", core.GameState{Score: 10})
	})
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.GameStarted("etris_wide")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `etris_games_started_total{variant="etris_wide"} 1`)

	n, err := testutil.GatherAndCount(reg, "etris_games_started_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestModelReportsMetrics(t *testing.T) {
	m := NewMetrics(nil)
	g := &stubGame{}
	model := NewModel(g, nil, testConfig, WithMetrics(m))

	g.state = core.GameState{Score: 30, Lines: 1, GameOver: true}
	model, _ = update(t, model, TickMsg{})
	update(t, model, TickMsg{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesStarted.WithLabelValues("stub")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesFinished.WithLabelValues("stub")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.linesCleared.WithLabelValues("stub")))
}
