package rate_limiter

import (
	"net/http"
	"strconv"

	"order-service/internal/pkg/httpjson"
	"order-service/internal/pkg/middlewares/metrics"
	"order-service/pkg/logger"
)

// Middleware отбивает запросы сверх лимита с 429. Лимит общий на сервис:
// ключа по вызывающему нет, токен ещё не проверен на этом шаге.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(rateLimiterQPS)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := metrics.RouteTemplate(r)
			if rlimiter.Allow() {
				RateLimiterDecisionsTotal.WithLabelValues(r.Method, route, decisionAllowed).Inc()
				next.ServeHTTP(w, r)
				return
			}

			RateLimiterDecisionsTotal.WithLabelValues(r.Method, route, decisionRejected).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			if err := httpjson.Message(w, http.StatusTooManyRequests, "Rate limit exceeded. Try again later."); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
