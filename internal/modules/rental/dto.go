package rental

import "lensycam/internal/domain"

type CreateRentalRequest struct {
	CameraID          int64   `json:"camera_id" binding:"required"`
	CustomerID        int64   `json:"customer_id" binding:"required"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           string  `json:"end_date"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	DailyRate         float64 `json:"daily_rate"`
	Deposit           float64 `json:"deposit"`
	Notes             string  `json:"notes"`
	CustomTotalAmount float64 `json:"custom_total_amount"`
}

// UpdateRentalRequest carries partial edits; nil means "keep the stored
// value". For the optional time bounds an explicit empty string clears the
// bound back to a full-day rental.
type UpdateRentalRequest struct {
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
	StartTime         *string  `json:"start_time"`
	EndTime           *string  `json:"end_time"`
	DailyRate         *float64 `json:"daily_rate"`
	Deposit           *float64 `json:"deposit"`
	ActualReturnDate  *string  `json:"actual_return_date"`
	Status            *string  `json:"status"`
	Notes             *string  `json:"notes"`
	CustomTotalAmount *float64 `json:"custom_total_amount"`
}

type ReturnRequest struct {
	ActualReturnDate string `json:"actual_return_date"`
}

// ConflictWindow is the occupied range reported back on an admission
// rejection.
type ConflictWindow struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// RentalDetails is a rental joined with its camera and customer summary.
type RentalDetails struct {
	domain.Rental
	CameraName      string  `json:"camera_name"`
	CameraBrand     string  `json:"brand"`
	CameraModel     string  `json:"model"`
	CameraCategory  string  `json:"category"`
	SerialNumber    *string `json:"serial_number,omitempty"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
	CustomerAddress string  `json:"customer_address,omitempty"`
}
