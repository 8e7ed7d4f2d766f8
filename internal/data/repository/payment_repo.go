package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, rental_id, amount, payment_method, transaction_id, stripe_payment_intent_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.RentalID,
		payment.Amount,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.StripePaymentIntentID,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.String("rental_id", payment.RentalID.String()),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("create payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, rental_id, amount, payment_method, transaction_id, stripe_payment_intent_id, status, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.RentalID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.TransactionID,
		&payment.StripePaymentIntentID,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `
		SELECT id, rental_id, amount, payment_method, transaction_id, stripe_payment_intent_id, status, created_at, updated_at
		FROM payments
		WHERE transaction_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&payment.ID,
		&payment.RentalID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.TransactionID,
		&payment.StripePaymentIntentID,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by transaction ID",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("find payment by transaction ID %s: %w", transactionID, err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, rental_id, amount, payment_method, transaction_id, stripe_payment_intent_id, status, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find payments", zap.Error(err))
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.RentalID,
			&payment.Amount,
			&payment.PaymentMethod,
			&payment.TransactionID,
			&payment.StripePaymentIntentID,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}
