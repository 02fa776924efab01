package customer_orders_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	handlerLog := log.With(logger.NewField("handler", "customer_orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]

	orders, err := h.service.GetCustomerOrders(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(logger.NewField("error", err)).Error("get customer orders")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
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
