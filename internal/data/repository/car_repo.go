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

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Car, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query := `
		INSERT INTO cars (id, brand, model, year, color, daily_rate, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		car.ID,
		car.Brand,
		car.Model,
		car.Year,
		car.Color,
		car.DailyRate,
		car.IsAvailable,
		car.CreatedAt,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("car_id", car.ID.String()),
			zap.String("brand", car.Brand),
			zap.String("model", car.Model),
		)
		return fmt.Errorf("create car %s: %w", car.ID.String(), err)
	}

	return nil
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	query := `
		SELECT id, brand, model, year, color, daily_rate, is_available, created_at, updated_at
		FROM cars
		WHERE id = $1
	`

	var car entity.Car
	err := r.db.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.Year,
		&car.Color,
		&car.DailyRate,
		&car.IsAvailable,
		&car.CreatedAt,
		&car.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID",
			zap.Error(err),
			zap.String("car_id", id.String()),
		)
		return nil, fmt.Errorf("find car by ID %s: %w", id.String(), err)
	}

	return &car, nil
}

func (r *carRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Car, error) {
	query := `
		SELECT id, brand, model, year, color, daily_rate, is_available, created_at, updated_at
		FROM cars
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find cars",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		var car entity.Car
		err := rows.Scan(
			&car.ID,
			&car.Brand,
			&car.Model,
			&car.Year,
			&car.Color,
			&car.DailyRate,
			&car.IsAvailable,
			&car.CreatedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, &car)
	}

	return cars, nil
}

func (r *carRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM cars`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count cars", zap.Error(err))
		return 0, fmt.Errorf("count cars: %w", err)
	}

	return count, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET brand = $2, model = $3, year = $4, color = $5, daily_rate = $6,
		    is_available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		car.ID,
		car.Brand,
		car.Model,
		car.Year,
		car.Color,
		car.DailyRate,
		car.IsAvailable,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update car",
			zap.Error(err),
			zap.String("car_id", car.ID.String()),
		)
		return fmt.Errorf("update car %s: %w", car.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", car.ID.String())
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cars WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete car",
			zap.Error(err),
			zap.String("car_id", id.String()),
		)
		return fmt.Errorf("delete car %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", id.String())
	}

	r.log.Info("Car deleted", zap.String("car_id", id.String()))
	return nil
}
