package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CalculateRentalCost returns dailyRate multiplied by the number of whole
// days between start and end. The end date must be strictly after the start
// date; a zero-day span is rejected, not priced at zero. Partial days do
// not exist in the date-only diff.
func CalculateRentalCost(dailyRate decimal.Decimal, start, end time.Time) (decimal.Decimal, error) {
	days := wholeDaysBetween(start, end)
	if days < 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidDateRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return dailyRate.Mul(decimal.NewFromInt(days)), nil
}

func wholeDaysBetween(start, end time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int64(e.Sub(s).Hours() / 24)
}
