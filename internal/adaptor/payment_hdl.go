package adaptor

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentIntent handles POST /api/rentals/{id}/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), rentalID)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment intent")
		return
	}

	utils.ResponseSuccess(w, "success", intent)
}

// RecordPayment handles POST /api/rentals/{id}/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), rentalID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment processed successfully", payment)
}

// GetPayments handles GET /api/payments
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetPayments(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetPaymentByID handles GET /api/payments/{id}
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment by ID")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}
