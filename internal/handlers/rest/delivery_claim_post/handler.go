package delivery_claim_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"order-service/internal/entities"
	"order-service/internal/generated/dto"
	"order-service/internal/handlers/rest/converters"
	"order-service/internal/pkg/auth"
	"order-service/internal/pkg/httpjson"
	"order-service/internal/service/delivery"
	"order-service/pkg/logger"
)

const (
	notClaimableMessage         = "Delivery not found or already accepted"
	adminCourierRequiredMessage = "delivery_personnel_id is required"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "delivery_claim_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, http.StatusForbidden, dto.ErrorResponse{Message: "Access denied"})
		return
	}

	// тело необязательно: курьер может просто взять заказ
	var claimDTO dto.PostDeliveryClaimJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&claimDTO); err != nil && !errors.Is(err, io.EOF) {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	courierID, ok := courierID(caller, claimDTO)
	if !ok {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: adminCourierRequiredMessage})
		return
	}

	claim := entities.DeliveryClaim{
		OrderID:   mux.Vars(r)["order_id"],
		CourierID: courierID,
	}
	if claimDTO.Status != nil {
		claim.Status = entities.DeliveryStatusType(*claimDTO.Status)
	}

	result, err := h.service.Claim(r.Context(), claim)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, delivery.ErrOrderNotFound),
			errors.Is(err, delivery.ErrAlreadyClaimed),
			errors.Is(err, delivery.ErrOrderNotClaimable):
			h.respond(w, http.StatusNotFound, dto.ErrorResponse{Message: notClaimableMessage})
		default:
			h.log.With(logger.NewField("error", err)).Error("claim delivery")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
		return
	}

	h.respond(w, http.StatusOK, dto.DeliveryClaimResponse{
		Delivery: converters.DeliveryToDTO(&result.Delivery),
		Order:    converters.OrderToDTO(&result.Order),
	})
}

// courierID: курьер всегда берёт заказ на себя. Админ курьером не является
// и обязан указать delivery_personnel_id, иначе false.
func courierID(caller entities.Caller, claimDTO dto.DeliveryClaimRequest) (string, bool) {
	if caller.Role != entities.RoleAdmin {
		return caller.ID, true
	}
	if claimDTO.DeliveryPersonnelId == nil || strings.TrimSpace(*claimDTO.DeliveryPersonnelId) == "" {
		return "", false
	}
	return *claimDTO.DeliveryPersonnelId, true
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	if err := httpjson.Write(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
