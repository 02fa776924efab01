package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"order-service/internal/pkg/httpjson"
)

// Middleware отвечает 503 на новые запросы, пока сервер останавливается.
// Запросы, успевшие пройти дальше, дорабатывают штатно.
func Middleware(isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				_ = httpjson.Message(w, http.StatusServiceUnavailable, "Service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
