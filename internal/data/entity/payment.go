package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPaypal     PaymentMethod = "paypal"
)

type Payment struct {
	Base
	RentalID              uuid.UUID       `db:"rental_id"`
	Amount                decimal.Decimal `db:"amount"`
	PaymentMethod         PaymentMethod   `db:"payment_method"`
	TransactionID         string          `db:"transaction_id"`
	StripePaymentIntentID *string         `db:"stripe_payment_intent_id"`
	Status                PaymentStatus   `db:"status"`
}
