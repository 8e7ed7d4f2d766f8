package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/internal/usecase"
	"car-rental/pkg/payment"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	recordErr error
	intentErr error
}

func (s *stubPaymentService) CreatePaymentIntent(_ context.Context, rentalID string) (*response.PaymentIntentResponse, error) {
	if s.intentErr != nil {
		return nil, s.intentErr
	}
	return &response.PaymentIntentResponse{ID: "pi_test", ClientSecret: "secret_test"}, nil
}

func (s *stubPaymentService) RecordPayment(_ context.Context, rentalID string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	return &response.PaymentResponse{ID: "pay_test", TransactionID: req.TransactionID}, nil
}

func (s *stubPaymentService) GetPaymentByID(_ context.Context, paymentID string) (*response.PaymentResponse, error) {
	return nil, fmt.Errorf("%w: payment %s", usecase.ErrNotFound, paymentID)
}

func (s *stubPaymentService) GetPayments(_ context.Context) ([]response.PaymentResponse, error) {
	return []response.PaymentResponse{}, nil
}

func newPaymentRouter(svc usecase.PaymentService) *chi.Mux {
	h := NewPaymentHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/rentals/{id}/create-payment-intent", h.CreatePaymentIntent)
	r.Post("/api/rentals/{id}/payments", h.RecordPayment)
	r.Get("/api/payments", h.GetPayments)
	r.Get("/api/payments/{id}", h.GetPaymentByID)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validPaymentBody = `{"payment_method":"paypal","transaction_id":"tx1","payment_intent_id":"pi_test"}`

func TestPaymentHandler_RecordPayment(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		rec := postJSON(t, router, "/api/rentals/r1/payments", validPaymentBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Payment processed successfully")
		assert.Contains(t, rec.Body.String(), "tx1")
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		rec := postJSON(t, router, "/api/rentals/r1/payments",
			`{"payment_method":"cash","transaction_id":"tx1","payment_intent_id":"pi_test"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("RentalNotFound", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{
			recordErr: fmt.Errorf("%w: rental r1", usecase.ErrNotFound),
		})

		rec := postJSON(t, router, "/api/rentals/r1/payments", validPaymentBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DuplicateTransaction", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{
			recordErr: fmt.Errorf("%w: tx1", usecase.ErrDuplicateTransaction),
		})

		rec := postJSON(t, router, "/api/rentals/r1/payments", validPaymentBody)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("IntentNotSucceeded", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{
			recordErr: fmt.Errorf("%w: intent pi_test is processing", usecase.ErrPaymentNotSucceeded),
		})

		rec := postJSON(t, router, "/api/rentals/r1/payments", validPaymentBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ProcessorError", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{
			recordErr: fmt.Errorf("%w: boom", payment.ErrProcessor),
		})

		rec := postJSON(t, router, "/api/rentals/r1/payments", validPaymentBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		rec := postJSON(t, router, "/api/rentals/r1/create-payment-intent", ``)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "pi_test")
		assert.Contains(t, rec.Body.String(), "clientSecret")
	})

	t.Run("ProcessorError", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{
			intentErr: fmt.Errorf("%w: timeout", payment.ErrProcessor),
		})

		rec := postJSON(t, router, "/api/rentals/r1/create-payment-intent", ``)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPaymentHandler_GetPaymentByID_NotFound(t *testing.T) {
	router := newPaymentRouter(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/payments/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
