package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimiterDecisionsTotal считает решения лимитера: allowed или rejected.
// route - шаблон mux, а не сырой путь, иначе id заказов раздуют кардинальность.
var RateLimiterDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limiter_decisions_total",
		Help: "Requests passed through or rejected by the rate limiter",
	},
	[]string{"method", "route", "decision"},
)

const (
	decisionAllowed  = "allowed"
	decisionRejected = "rejected"
)
