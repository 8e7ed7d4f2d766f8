package response

import (
	"time"

	"car-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID              string               `json:"id"`
	RentalID        string               `json:"rental_id"`
	Amount          decimal.Decimal      `json:"amount"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method"`
	TransactionID   string               `json:"transaction_id"`
	PaymentIntentID *string              `json:"payment_intent_id,omitempty"`
	Status          entity.PaymentStatus `json:"status"`
	Rental          *RentalResponse      `json:"rental,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

func PaymentToResponse(payment *entity.Payment, rental *RentalResponse) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID.String(),
		RentalID:        payment.RentalID.String(),
		Amount:          payment.Amount,
		PaymentMethod:   payment.PaymentMethod,
		TransactionID:   payment.TransactionID,
		PaymentIntentID: payment.StripePaymentIntentID,
		Status:          payment.Status,
		Rental:          rental,
		CreatedAt:       payment.CreatedAt,
	}
}
