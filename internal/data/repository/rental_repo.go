package repository

import (
	"context"
	"errors"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrCarNotAvailable is returned when the reservation compare-and-set
// finds the car already rented out.
var ErrCarNotAvailable = errors.New("car is not available")

type RentalRepository interface {
	// CreateAndReserveCar inserts the rental and flips the car to
	// unavailable in one transaction. The availability flip only matches
	// rows where is_available is still true, so two concurrent creates
	// against the same car cannot both succeed.
	CreateAndReserveCar(ctx context.Context, rental *entity.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	FindAll(ctx context.Context) ([]*entity.Rental, error)
	Update(ctx context.Context, rental *entity.Rental) error
	// DeleteAndReleaseCar removes the rental and flips its car back to
	// available in one transaction.
	DeleteAndReleaseCar(ctx context.Context, rentalID, carID uuid.UUID) error
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

func (r *rentalRepository) CreateAndReserveCar(ctx context.Context, rental *entity.Rental) error {
	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		reserve := `
			UPDATE cars
			SET is_available = false, updated_at = NOW()
			WHERE id = $1 AND is_available = true
		`

		result, err := tx.Exec(ctx, reserve, rental.CarID)
		if err != nil {
			return fmt.Errorf("reserve car %s: %w", rental.CarID.String(), err)
		}
		if result.RowsAffected() == 0 {
			return ErrCarNotAvailable
		}

		insert := `
			INSERT INTO rentals (id, car_id, customer_name, start_date, end_date, total_cost, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		_, err = tx.Exec(ctx, insert,
			rental.ID,
			rental.CarID,
			rental.CustomerName,
			rental.StartDate,
			rental.EndDate,
			rental.TotalCost,
			rental.CreatedAt,
			rental.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create rental %s: %w", rental.ID.String(), err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrCarNotAvailable) {
			r.log.Error("Failed to create rental",
				zap.Error(err),
				zap.String("rental_id", rental.ID.String()),
				zap.String("car_id", rental.CarID.String()),
			)
		}
		return err
	}

	return nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	query := `
		SELECT id, car_id, customer_name, start_date, end_date, total_cost, created_at, updated_at
		FROM rentals
		WHERE id = $1
	`

	var rental entity.Rental
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rental.ID,
		&rental.CarID,
		&rental.CustomerName,
		&rental.StartDate,
		&rental.EndDate,
		&rental.TotalCost,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by ID",
			zap.Error(err),
			zap.String("rental_id", id.String()),
		)
		return nil, fmt.Errorf("find rental by ID %s: %w", id.String(), err)
	}

	return &rental, nil
}

func (r *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	query := `
		SELECT id, car_id, customer_name, start_date, end_date, total_cost, created_at, updated_at
		FROM rentals
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rentals", zap.Error(err))
		return nil, fmt.Errorf("find rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*entity.Rental
	for rows.Next() {
		var rental entity.Rental
		err := rows.Scan(
			&rental.ID,
			&rental.CarID,
			&rental.CustomerName,
			&rental.StartDate,
			&rental.EndDate,
			&rental.TotalCost,
			&rental.CreatedAt,
			&rental.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rental row", zap.Error(err))
			return nil, fmt.Errorf("scan rental row: %w", err)
		}
		rentals = append(rentals, &rental)
	}

	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	query := `
		UPDATE rentals
		SET customer_name = $2, start_date = $3, end_date = $4, total_cost = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.CustomerName,
		rental.StartDate,
		rental.EndDate,
		rental.TotalCost,
		rental.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rental",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
		)
		return fmt.Errorf("update rental %s: %w", rental.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental %s not found", rental.ID.String())
	}

	return nil
}

func (r *rentalRepository) DeleteAndReleaseCar(ctx context.Context, rentalID, carID uuid.UUID) error {
	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		release := `UPDATE cars SET is_available = true, updated_at = NOW() WHERE id = $1`

		if _, err := tx.Exec(ctx, release, carID); err != nil {
			return fmt.Errorf("release car %s: %w", carID.String(), err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, rentalID)
		if err != nil {
			return fmt.Errorf("delete rental %s: %w", rentalID.String(), err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("rental %s not found", rentalID.String())
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to delete rental",
			zap.Error(err),
			zap.String("rental_id", rentalID.String()),
			zap.String("car_id", carID.String()),
		)
		return err
	}

	r.log.Info("Rental deleted", zap.String("rental_id", rentalID.String()))
	return nil
}
