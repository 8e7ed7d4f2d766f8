package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CarService interface {
	GetCars(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CarResponse], error)
	GetCarByID(ctx context.Context, carID string) (*response.CarResponse, error)
	CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, carID string, req *request.CarRequest) (*response.CarResponse, error)
	DeleteCar(ctx context.Context, carID string) error
}

type carService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCarService(repo *repository.Repository, log *zap.Logger) CarService {
	return &carService{
		repo: repo,
		log:  log.With(zap.String("service", "car")),
	}
}

func (s *carService) GetCars(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CarResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	cars, err := s.repo.Car.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get cars",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get cars: %w", err)
	}

	total, err := s.repo.Car.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count cars", zap.Error(err))
		return nil, fmt.Errorf("count cars: %w", err)
	}

	carResponses := make([]response.CarResponse, len(cars))
	for i, car := range cars {
		carResponses[i] = response.CarToResponse(car)
	}

	return response.NewPaginatedResponse(carResponses, req.Page, req.PerPage, total), nil
}

func (s *carService) GetCarByID(ctx context.Context, carID string) (*response.CarResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car %s: %w", carID, err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error) {
	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Color:       req.Color,
		DailyRate:   req.DailyRate,
		IsAvailable: true,
	}

	if err := s.repo.Car.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car created",
		zap.String("car_id", car.ID.String()),
		zap.String("brand", car.Brand),
		zap.String("model", car.Model),
		zap.String("daily_rate", car.DailyRate.String()),
	)

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) UpdateCar(ctx context.Context, carID string, req *request.CarRequest) (*response.CarResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car %s: %w", carID, err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	car.Brand = req.Brand
	car.Model = req.Model
	car.Year = req.Year
	car.Color = req.Color
	car.DailyRate = req.DailyRate
	car.UpdatedAt = time.Now()

	if err := s.repo.Car.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car %s: %w", carID, err)
	}

	s.log.Info("Car updated", zap.String("car_id", carID))

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) DeleteCar(ctx context.Context, carID string) error {
	id, err := uuid.Parse(carID)
	if err != nil {
		return fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get car %s: %w", carID, err)
	}
	if car == nil {
		return fmt.Errorf("%w: car %s", ErrNotFound, carID)
	}

	if err := s.repo.Car.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete car %s: %w", carID, err)
	}

	return nil
}
