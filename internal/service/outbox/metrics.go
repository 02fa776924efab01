package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_events_published_total",
			Help: "Total number of order events published from the outbox",
		},
	)

	RelayFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_relay_failures_total",
			Help: "Total number of failed outbox relay runs by stage",
		},
		[]string{"stage"},
	)
)
