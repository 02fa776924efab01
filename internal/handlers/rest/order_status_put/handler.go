package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"order-service/internal/entities"
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
	handlerLog := log.With(logger.NewField("handler", "order_status_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var statusDTO dto.PutOrderStatusJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), orderID, entities.OrderStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, order.ErrOrderNotFound):
			h.respond(w, http.StatusNotFound, dto.ErrorResponse{Message: "Order not found"})
		default:
			h.log.With(logger.NewField("error", err)).Error("update order status")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
		return
	}

	h.respond(w, http.StatusOK, converters.OrderToDTO(orderEntity))
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	if err := httpjson.Write(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
