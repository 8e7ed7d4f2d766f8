package payment

import (
	"context"
	"errors"
)

// ErrProcessor wraps any failure reported by the external payment processor.
var ErrProcessor = errors.New("payment processor error")

// IntentStatusSucceeded is the only status under which a payment may be recorded.
const IntentStatusSucceeded = "succeeded"

// Intent is the processor's pending authorization for a specific amount.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Processor is the port to the external payment processor. Amounts are in
// minor currency units (cents).
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
