package request

type CreateRentalRequest struct {
	CarID        string `json:"car_id" validate:"required,uuid4"`
	CustomerName string `json:"customer_name" validate:"required,min=1,max=255"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateRentalRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=255"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
}
