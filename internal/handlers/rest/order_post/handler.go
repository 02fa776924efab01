package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-service/internal/generated/dto"
	"order-service/internal/handlers/rest/converters"
	"order-service/internal/pkg/httpjson"
	"order-service/internal/service/order"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.PostOrderJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&orderCreateDTO); err != nil {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	orderEntity, err := h.service.PlaceOrder(r.Context(), converters.OrderCreateFromDTO(orderCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(logger.NewField("error", err)).Error("place order")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
		return
	}

	h.respond(w, http.StatusCreated, converters.OrderToDTO(orderEntity))
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	if err := httpjson.Write(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
