package request

import (
	"github.com/shopspring/decimal"
)

type CarRequest struct {
	Brand     string          `json:"brand" validate:"required,min=1,max=100"`
	Model     string          `json:"model" validate:"required,min=1,max=100"`
	Year      int             `json:"year" validate:"required,min=1900,max=2100"`
	Color     string          `json:"color" validate:"required,min=1,max=50"`
	DailyRate decimal.Decimal `json:"daily_rate" validate:"required"`
}
