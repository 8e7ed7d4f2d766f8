package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
)

// StripeProcessor implements Processor against the Stripe API. The secret
// key is bound at construction; the package-level stripe.Key is never set.
type StripeProcessor struct {
	api     *client.API
	timeout time.Duration
	log     *zap.Logger
}

func NewStripeProcessor(secretKey string, timeout time.Duration, log *zap.Logger) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProcessor{
		api:     api,
		timeout: timeout,
		log:     log.With(zap.String("processor", "stripe")),
	}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:  ctx,
			Metadata: metadata,
		},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("currency", currency),
		)
		return nil, fmt.Errorf("%w: create intent: %w", ErrProcessor, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

func (p *StripeProcessor) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		p.log.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("intent_id", id),
		)
		return nil, fmt.Errorf("%w: retrieve intent %s: %w", ErrProcessor, id, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

// IsRetryable reports whether a processor failure is connection-level
// (timeout, network) rather than a terminal decline or invalid request.
func IsRetryable(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Type {
		case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
			return false
		}
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, context.DeadlineExceeded)
}
