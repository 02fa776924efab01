package authentication

import (
	"net/http"

	"order-service/internal/pkg/auth"
	"order-service/internal/pkg/httpjson"
	"order-service/pkg/logger"
)

// Middleware проверяет Bearer-токен и кладёт вызывающего в контекст запроса.
// Нет токена - 401, токен не прошёл проверку - 403.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				reject(w, log, r, http.StatusUnauthorized, "Unauthorized", err)
				return
			}

			caller, err := verifier.Verify(token)
			if err != nil {
				reject(w, log, r, http.StatusForbidden, "Forbidden", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithCaller(r.Context(), caller)))
		})
	}
}

func reject(w http.ResponseWriter, log handlerLogger, r *http.Request, status int, message string, reason error) {
	log.Debug("request rejected by authentication",
		logger.NewField("path", r.URL.Path),
		logger.NewField("reason", reason.Error()),
	)

	if err := httpjson.Message(w, status, message); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
