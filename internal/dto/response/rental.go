package response

import (
	"time"

	"car-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RentalResponse struct {
	ID           string          `json:"id"`
	CarID        string          `json:"car_id"`
	CustomerName string          `json:"customer_name"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Car          *CarResponse    `json:"car,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func RentalToResponse(rental *entity.Rental, car *entity.Car) RentalResponse {
	resp := RentalResponse{
		ID:           rental.ID.String(),
		CarID:        rental.CarID.String(),
		CustomerName: rental.CustomerName,
		StartDate:    rental.StartDate.Format("2006-01-02"),
		EndDate:      rental.EndDate.Format("2006-01-02"),
		TotalCost:    rental.TotalCost,
		CreatedAt:    rental.CreatedAt,
	}

	if car != nil {
		carResp := CarToResponse(car)
		resp.Car = &carResp
	}

	return resp
}
