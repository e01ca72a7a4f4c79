package customer

import "lensycam/internal/domain"

// CustomerRequest is the body for create and update.
type CustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address"`
	IDNumber string `json:"id_number"`
	Notes    string `json:"notes"`
}

// CustomerDetails is a customer joined with their rental history, newest
// first.
type CustomerDetails struct {
	domain.Customer
	Rentals []RentalSummary `json:"rentals"`
}

type RentalSummary struct {
	ID          int64   `json:"id"`
	CameraID    int64   `json:"camera_id"`
	CameraName  string  `json:"camera_name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}
