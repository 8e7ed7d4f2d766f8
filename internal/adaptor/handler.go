package adaptor

import (
	"errors"
	"net/http"

	"car-rental/internal/data/repository"
	"car-rental/internal/usecase"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Car     *CarHandler
	Rental  *RentalHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Car:     NewCarHandler(service.Car, log),
		Rental:  NewRentalHandler(service.Rental, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}

// handleServiceError maps domain errors to HTTP statuses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrDuplicateTransaction),
		errors.Is(err, repository.ErrCarNotAvailable):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrPaymentNotSucceeded):
		log.Warn(operation+" rejected - intent not succeeded", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, payment.ErrProcessor):
		log.Error("Payment processor failure during "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Payment processor error")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
