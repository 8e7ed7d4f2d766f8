package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, rentalID string) (*response.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, rentalID string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	GetPayments(ctx context.Context) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	processor payment.Processor
	currency  string
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, processor payment.Processor, currency string, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		processor: processor,
		currency:  currency,
		log:       log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, rentalID string) (*response.PaymentIntentResponse, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	// Stripe wants the amount in minor units (cents)
	amount := rental.TotalCost.Shift(2).IntPart()

	intent, err := s.processor.CreateIntent(ctx, amount, s.currency, map[string]string{
		"rental_id": rental.ID.String(),
	})
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.String("rental_id", rentalID),
			zap.Int64("amount", amount),
			zap.Bool("retryable", payment.IsRetryable(err)),
		)
		return nil, err
	}

	s.log.Info("Payment intent created",
		zap.String("rental_id", rentalID),
		zap.String("intent_id", intent.ID),
		zap.Int64("amount", amount),
	)

	return &response.PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, rentalID string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Payment.FindByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("check transaction %s: %w", req.TransactionID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTransaction, req.TransactionID)
	}

	// The intent must have succeeded before anything is persisted
	intent, err := s.processor.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != payment.IntentStatusSucceeded {
		s.log.Warn("Payment intent not succeeded",
			zap.String("rental_id", rentalID),
			zap.String("intent_id", req.PaymentIntentID),
			zap.String("intent_status", intent.Status),
		)
		return nil, fmt.Errorf("%w: intent %s is %s", ErrPaymentNotSucceeded, req.PaymentIntentID, intent.Status)
	}

	now := time.Now()
	intentID := req.PaymentIntentID
	p := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RentalID: rental.ID,
		// The stored amount is the rental's total cost, never caller input
		Amount:                rental.TotalCost,
		PaymentMethod:         entity.PaymentMethod(req.PaymentMethod),
		TransactionID:         req.TransactionID,
		StripePaymentIntentID: &intentID,
		Status:                entity.PaymentStatusCompleted,
	}

	if err := s.repo.Payment.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", p.ID.String()),
		zap.String("rental_id", rentalID),
		zap.String("payment_method", req.PaymentMethod),
		zap.String("transaction_id", req.TransactionID),
		zap.String("amount", p.Amount.String()),
	)

	resp := response.PaymentToResponse(p, s.rentalResponse(ctx, rental.ID))
	return &resp, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	}

	p, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	}

	resp := response.PaymentToResponse(p, s.rentalResponse(ctx, p.RentalID))
	return &resp, nil
}

func (s *paymentService) GetPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get payments", zap.Error(err))
		return nil, fmt.Errorf("get payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = response.PaymentToResponse(p, s.rentalResponse(ctx, p.RentalID))
	}

	return paymentResponses, nil
}

func (s *paymentService) findRental(ctx context.Context, rentalID string) (*entity.Rental, error) {
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

func (s *paymentService) rentalResponse(ctx context.Context, rentalID uuid.UUID) *response.RentalResponse {
	rental, err := s.repo.Rental.FindByID(ctx, rentalID)
	if err != nil || rental == nil {
		return nil
	}

	car, _ := s.repo.Car.FindByID(ctx, rental.CarID)
	resp := response.RentalToResponse(rental, car)
	return &resp
}
