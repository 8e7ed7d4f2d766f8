package request

// CreatePaymentRequest carries no amount field: the stored amount is always
// the rental's total cost, never a client-supplied value.
type CreatePaymentRequest struct {
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=credit_card debit_card paypal"`
	TransactionID   string `json:"transaction_id" validate:"required,min=1,max=255"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required,min=1,max=255"`
}
