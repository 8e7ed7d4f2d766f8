package entity

import (
	"github.com/shopspring/decimal"
)

type Car struct {
	Base
	Brand       string          `db:"brand"`
	Model       string          `db:"model"`
	Year        int             `db:"year"`
	Color       string          `db:"color"`
	DailyRate   decimal.Decimal `db:"daily_rate"`
	IsAvailable bool            `db:"is_available"`
}
