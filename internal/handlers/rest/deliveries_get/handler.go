package deliveries_get

import (
	"net/http"

	"order-service/internal/generated/dto"
	"order-service/internal/handlers/rest/converters"
	"order-service/internal/pkg/httpjson"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "deliveries_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListClaimable(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list claimable orders")
		h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	h.respond(w, http.StatusOK, converters.OrdersToDTO(orders))
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	if err := httpjson.Write(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
