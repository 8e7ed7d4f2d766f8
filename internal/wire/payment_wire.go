package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// Payment flows hang off the rental they pay for
	r.Post("/api/rentals/{id}/create-payment-intent", paymentHandler.CreatePaymentIntent)
	r.Post("/api/rentals/{id}/payments", paymentHandler.RecordPayment)

	r.Get("/api/payments", paymentHandler.GetPayments)
	r.Get("/api/payments/{id}", paymentHandler.GetPaymentByID)
}
