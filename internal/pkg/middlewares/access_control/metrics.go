package access_control

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "access_denied_total",
		Help: "Total number of requests rejected by the access policy",
	},
	[]string{"operation"},
)
