package usecase

import (
	"errors"
)

// Sentinel errors for the domain workflows. Handlers map these to HTTP
// statuses with errors.Is; services wrap them with context via fmt.Errorf.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrDuplicateTransaction = errors.New("transaction ID already recorded")
	ErrPaymentNotSucceeded  = errors.New("payment intent has not succeeded")
)
