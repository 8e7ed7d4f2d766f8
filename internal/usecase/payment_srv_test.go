package usecase

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/dto/request"
	"car-rental/pkg/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRental(rentals *fakeRentalRepo, carID uuid.UUID, totalCost string) *entity.Rental {
	now := time.Now()
	rental := &entity.Rental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CarID:        carID,
		CustomerName: "Alice Martin",
		StartDate:    date("2025-01-01"),
		EndDate:      date("2025-01-04"),
		TotalCost:    decimal.RequireFromString(totalCost),
	}
	rentals.rentals[rental.ID] = rental
	return rental
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("AmountInMinorUnits", func(t *testing.T) {
		repo, cars, rentals, _ := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		resp, err := svc.CreatePaymentIntent(ctx, rental.ID.String())
		require.NoError(t, err)

		assert.Equal(t, int64(15000), processor.lastAmount)
		assert.Equal(t, "usd", processor.lastCurrency)
		assert.Equal(t, rental.ID.String(), processor.lastMetadata["rental_id"])
		assert.Equal(t, processor.createdIntent.ID, resp.ID)
		assert.NotEmpty(t, resp.ClientSecret)
	})

	t.Run("RentalNotFound", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewPaymentService(repo, newFakeProcessor(), "usd", zap.NewNop())

		_, err := svc.CreatePaymentIntent(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ProcessorFailure", func(t *testing.T) {
		repo, cars, rentals, _ := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		processor.createErr = payment.ErrProcessor
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		_, err := svc.CreatePaymentIntent(ctx, rental.ID.String())
		assert.ErrorIs(t, err, payment.ErrProcessor)
	})
}

func TestPaymentService_RecordPayment(t *testing.T) {
	ctx := context.Background()

	succeededIntent := func(processor *fakeProcessor) *payment.Intent {
		intent := &payment.Intent{
			ID:           "pi_test",
			ClientSecret: "secret_test",
			Status:       payment.IntentStatusSucceeded,
		}
		processor.intents[intent.ID] = intent
		return intent
	}

	t.Run("Success", func(t *testing.T) {
		repo, cars, rentals, payments := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		intent := succeededIntent(processor)
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		resp, err := svc.RecordPayment(ctx, rental.ID.String(), &request.CreatePaymentRequest{
			PaymentMethod:   "paypal",
			TransactionID:   "tx1",
			PaymentIntentID: intent.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "150", resp.Amount.String())
		assert.Equal(t, entity.PaymentStatusCompleted, resp.Status)
		assert.Equal(t, entity.PaymentMethodPaypal, resp.PaymentMethod)
		assert.Equal(t, "tx1", resp.TransactionID)
		require.NotNil(t, resp.PaymentIntentID)
		assert.Equal(t, intent.ID, *resp.PaymentIntentID)
		require.NotNil(t, resp.Rental)
		assert.Len(t, payments.payments, 1)
	})

	t.Run("AmountAlwaysRentalTotalCost", func(t *testing.T) {
		repo, cars, rentals, payments := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		intent := succeededIntent(processor)
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		// The request type has no amount field; whatever the stored
		// payment says must match the rental's cost
		_, err := svc.RecordPayment(ctx, rental.ID.String(), &request.CreatePaymentRequest{
			PaymentMethod:   "credit_card",
			TransactionID:   "tx2",
			PaymentIntentID: intent.ID,
		})
		require.NoError(t, err)

		for _, p := range payments.payments {
			assert.True(t, p.Amount.Equal(rental.TotalCost))
		}
	})

	t.Run("DuplicateTransaction", func(t *testing.T) {
		repo, cars, rentals, payments := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		intent := succeededIntent(processor)
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		req := &request.CreatePaymentRequest{
			PaymentMethod:   "paypal",
			TransactionID:   "tx1",
			PaymentIntentID: intent.ID,
		}

		_, err := svc.RecordPayment(ctx, rental.ID.String(), req)
		require.NoError(t, err)

		_, err = svc.RecordPayment(ctx, rental.ID.String(), req)
		assert.ErrorIs(t, err, ErrDuplicateTransaction)
		assert.Len(t, payments.payments, 1)
	})

	t.Run("IntentNotSucceeded", func(t *testing.T) {
		repo, cars, rentals, payments := newTestRepository()
		car := seedCar(cars, "50.00")
		rental := seedRental(rentals, car.ID, "150.00")
		processor := newFakeProcessor()
		processor.intents["pi_pending"] = &payment.Intent{
			ID:     "pi_pending",
			Status: "requires_payment_method",
		}
		svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

		_, err := svc.RecordPayment(ctx, rental.ID.String(), &request.CreatePaymentRequest{
			PaymentMethod:   "paypal",
			TransactionID:   "tx1",
			PaymentIntentID: "pi_pending",
		})
		assert.ErrorIs(t, err, ErrPaymentNotSucceeded)
		assert.Empty(t, payments.payments)
	})

	t.Run("RentalNotFound", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewPaymentService(repo, newFakeProcessor(), "usd", zap.NewNop())

		_, err := svc.RecordPayment(ctx, uuid.NewString(), &request.CreatePaymentRequest{
			PaymentMethod:   "paypal",
			TransactionID:   "tx1",
			PaymentIntentID: "pi_test",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPaymentService_GetPayments(t *testing.T) {
	ctx := context.Background()

	repo, cars, rentals, _ := newTestRepository()
	car := seedCar(cars, "50.00")
	rental := seedRental(rentals, car.ID, "150.00")
	processor := newFakeProcessor()
	processor.intents["pi_test"] = &payment.Intent{ID: "pi_test", Status: payment.IntentStatusSucceeded}
	svc := NewPaymentService(repo, processor, "usd", zap.NewNop())

	created, err := svc.RecordPayment(ctx, rental.ID.String(), &request.CreatePaymentRequest{
		PaymentMethod:   "debit_card",
		TransactionID:   "tx9",
		PaymentIntentID: "pi_test",
	})
	require.NoError(t, err)

	list, err := svc.GetPayments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	require.NotNil(t, list[0].Rental)
	assert.Equal(t, rental.ID.String(), list[0].Rental.ID)

	got, err := svc.GetPaymentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TransactionID, got.TransactionID)

	_, err = svc.GetPaymentByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
