package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Car     CarService
	Rental  RentalService
	Payment PaymentService
}

func NewService(repo *repository.Repository, processor payment.Processor, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Car:     NewCarService(repo, log),
		Rental:  NewRentalService(repo, log),
		Payment: NewPaymentService(repo, processor, config.Stripe.Currency, log),
	}
}
