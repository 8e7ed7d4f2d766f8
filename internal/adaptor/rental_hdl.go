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

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// GetRentals handles GET /api/rentals
func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.GetRentals(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get rentals")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// GetRentalByID handles GET /api/rentals/{id}
func (h *RentalHandler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	rental, err := h.service.GetRentalByID(r.Context(), rentalID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rental by ID")
		return
	}

	utils.ResponseSuccess(w, "success", rental)
}

// CreateRental handles POST /api/rentals
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.CreateRental(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rental")
		return
	}

	utils.ResponseCreated(w, "Rental created successfully", rental)
}

// UpdateRental handles PUT /api/rentals/{id}
func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	var req request.UpdateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.UpdateRental(r.Context(), rentalID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rental")
		return
	}

	utils.ResponseSuccess(w, "Rental updated successfully", rental)
}

// DeleteRental handles DELETE /api/rentals/{id}
func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	if err := h.service.DeleteRental(r.Context(), rentalID); err != nil {
		handleServiceError(w, h.log, err, "delete rental")
		return
	}

	utils.ResponseNoContent(w)
}
