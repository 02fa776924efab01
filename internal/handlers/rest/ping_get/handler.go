package ping_get

import (
	"net/http"

	"order-service/internal/generated/dto"
	"order-service/internal/pkg/httpjson"
	"order-service/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	if err := httpjson.Write(w, http.StatusOK, dto.PingResponse{Message: &message}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
