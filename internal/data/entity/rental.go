package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental books one car for one customer over a date range. TotalCost is
// always derived from the car's daily rate, never supplied by a caller.
type Rental struct {
	Base
	CarID        uuid.UUID       `db:"car_id"`
	CustomerName string          `db:"customer_name"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalCost    decimal.Decimal `db:"total_cost"`
}
