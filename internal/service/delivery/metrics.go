package delivery

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_claims_total",
		Help: "Total number of delivery claim attempts by outcome",
	},
	[]string{"outcome"},
)

func claimOutcome(err error) string {
	switch {
	case err == nil:
		return "claimed"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyClaimed):
		return "already_claimed"
	case errors.Is(err, ErrOrderNotClaimable):
		return "not_claimable"
	default:
		return "error"
	}
}
