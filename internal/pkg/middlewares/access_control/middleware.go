package access_control

import (
	"net/http"

	"order-service/internal/pkg/auth"
	"order-service/internal/pkg/httpjson"
	"order-service/internal/service/access"
	"order-service/pkg/logger"
)

const accessDeniedMessage = "Access denied"

// Middleware пропускает запрос, только если роль вызывающего допущена к op.
// Ставится после authentication: без вызывающего в контексте доступ закрыт.
func Middleware(log handlerLogger, policy Policy, op access.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := auth.CallerFromContext(r.Context())
			if ok && policy.Check(caller.Role, op) == nil {
				next.ServeHTTP(w, r)
				return
			}

			AccessDeniedTotal.WithLabelValues(op.String()).Inc()
			log.Debug("access denied",
				logger.NewField("operation", op.String()),
				logger.NewField("path", r.URL.Path),
			)

			if err := httpjson.Message(w, http.StatusForbidden, accessDeniedMessage); err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		})
	}
}
