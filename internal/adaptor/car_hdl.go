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

type CarHandler struct {
	service usecase.CarService
	log     *zap.Logger
}

func NewCarHandler(service usecase.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log.With(zap.String("handler", "car")),
	}
}

// GetCars handles GET /api/cars
func (h *CarHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	cars, err := h.service.GetCars(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// GetCarByID handles GET /api/cars/{id}
func (h *CarHandler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	car, err := h.service.GetCarByID(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "get car by ID")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}

// CreateCar handles POST /api/cars
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	if !req.DailyRate.IsPositive() {
		utils.ResponseUnprocessable(w, "Validation failed", map[string]string{
			"DailyRate": "Must be greater than zero",
		})
		return
	}

	car, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create car")
		return
	}

	utils.ResponseCreated(w, "Car created successfully", car)
}

// UpdateCar handles PUT /api/cars/{id}
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	if !req.DailyRate.IsPositive() {
		utils.ResponseUnprocessable(w, "Validation failed", map[string]string{
			"DailyRate": "Must be greater than zero",
		})
		return
	}

	car, err := h.service.UpdateCar(r.Context(), carID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "Car updated successfully", car)
}

// DeleteCar handles DELETE /api/cars/{id}
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	if err := h.service.DeleteCar(r.Context(), carID); err != nil {
		handleServiceError(w, h.log, err, "delete car")
		return
	}

	utils.ResponseNoContent(w)
}
