package repository

import (
	"car-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Car     CarRepository
	Rental  RentalRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Car:     NewCarRepository(db, log),
		Rental:  NewRentalRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
