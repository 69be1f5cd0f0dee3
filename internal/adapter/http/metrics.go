package adapthttp

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the server.
type Metrics struct {
	Toggles  *prometheus.CounterVec
	Unlocks  *prometheus.CounterVec
	Requests *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Toggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_habit_toggles_total",
				Help: "Total number of applied habit toggles",
			},
			[]string{"direction"}, // direction: complete, undo
		),
		Unlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_achievements_unlocked_total",
				Help: "Total number of achievements unlocked",
			},
			[]string{"achievement"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
	}
	reg.MustRegister(m.Toggles, m.Unlocks, m.Requests)
	return m
}

// RecordToggle counts a toggle outcome.
func (m *Metrics) RecordToggle(completed bool, unlocked []string) {
	direction := "undo"
	if completed {
		direction = "complete"
	}
	m.Toggles.WithLabelValues(direction).Inc()
	for _, id := range unlocked {
		m.Unlocks.WithLabelValues(id).Inc()
	}
}

// RecordRequest counts a served request.
func (m *Metrics) RecordRequest(method string, status int) {
	m.Requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
