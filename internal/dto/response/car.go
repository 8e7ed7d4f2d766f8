package response

import (
	"time"

	"car-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CarResponse struct {
	ID          string          `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Color       string          `json:"color"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

func CarToResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:          car.ID.String(),
		Brand:       car.Brand,
		Model:       car.Model,
		Year:        car.Year,
		Color:       car.Color,
		DailyRate:   car.DailyRate,
		IsAvailable: car.IsAvailable,
		CreatedAt:   car.CreatedAt,
	}
}
