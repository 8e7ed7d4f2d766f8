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

type RentalService interface {
	GetRentals(ctx context.Context) ([]response.RentalResponse, error)
	GetRentalByID(ctx context.Context, rentalID string) (*response.RentalResponse, error)
	CreateRental(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error)
	UpdateRental(ctx context.Context, rentalID string, req *request.UpdateRentalRequest) (*response.RentalResponse, error)
	DeleteRental(ctx context.Context, rentalID string) error
}

type rentalService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRentalService(repo *repository.Repository, log *zap.Logger) RentalService {
	return &rentalService{
		repo: repo,
		log:  log.With(zap.String("service", "rental")),
	}
}

func (s *rentalService) GetRentals(ctx context.Context) ([]response.RentalResponse, error) {
	rentals, err := s.repo.Rental.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rentals", zap.Error(err))
		return nil, fmt.Errorf("get rentals: %w", err)
	}

	rentalResponses := make([]response.RentalResponse, len(rentals))
	for i, rental := range rentals {
		car, _ := s.repo.Car.FindByID(ctx, rental.CarID)
		rentalResponses[i] = response.RentalToResponse(rental, car)
	}

	return rentalResponses, nil
}

func (s *rentalService) GetRentalByID(ctx context.Context, rentalID string) (*response.RentalResponse, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	car, _ := s.repo.Car.FindByID(ctx, rental.CarID)
	resp := response.RentalToResponse(rental, car)
	return &resp, nil
}

func (s *rentalService) CreateRental(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error) {
	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, req.CarID)
	}

	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("get car %s: %w", req.CarID, err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, req.CarID)
	}

	startDate, endDate, err := parseRentalDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// Cost comes from the car's current daily rate
	totalCost, err := CalculateRentalCost(car.DailyRate, startDate, endDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rental := &entity.Rental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CarID:        carID,
		CustomerName: req.CustomerName,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalCost:    totalCost,
	}

	// Rental insert and car reservation commit together or not at all
	if err := s.repo.Rental.CreateAndReserveCar(ctx, rental); err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.log.Info("Rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("car_id", req.CarID),
		zap.String("customer", req.CustomerName),
		zap.String("total_cost", totalCost.String()),
	)

	car.IsAvailable = false
	resp := response.RentalToResponse(rental, car)
	return &resp, nil
}

func (s *rentalService) UpdateRental(ctx context.Context, rentalID string, req *request.UpdateRentalRequest) (*response.RentalResponse, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	car, err := s.repo.Car.FindByID(ctx, rental.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car %s: %w", rental.CarID.String(), err)
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car %s", ErrNotFound, rental.CarID.String())
	}

	startDate, endDate, err := parseRentalDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// Recompute from the car's current rate, not the rate at booking time
	totalCost, err := CalculateRentalCost(car.DailyRate, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rental.CustomerName = req.CustomerName
	rental.StartDate = startDate
	rental.EndDate = endDate
	rental.TotalCost = totalCost
	rental.UpdatedAt = time.Now()

	if err := s.repo.Rental.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("update rental %s: %w", rentalID, err)
	}

	s.log.Info("Rental updated",
		zap.String("rental_id", rentalID),
		zap.String("total_cost", totalCost.String()),
	)

	resp := response.RentalToResponse(rental, car)
	return &resp, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID string) error {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return err
	}

	// Release the car and remove the rental in one transaction
	if err := s.repo.Rental.DeleteAndReleaseCar(ctx, rental.ID, rental.CarID); err != nil {
		return fmt.Errorf("delete rental %s: %w", rentalID, err)
	}

	return nil
}

func (s *rentalService) findRental(ctx context.Context, rentalID string) (*entity.Rental, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("%w: rental %s", ErrNotFound, rentalID)
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rental %s: %w", rentalID, err)
	}
	if rental == nil {
		return nil, fmt.Errorf("%w: rental %s", ErrNotFound, rentalID)
	}

	return rental, nil
}

func parseRentalDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date %s", ErrInvalidDateRange, start)
	}

	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date %s", ErrInvalidDateRange, end)
	}

	if !endDate.After(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange, start, end)
	}

	return startDate, endDate, nil
}
