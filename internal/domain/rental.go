package domain

import "time"

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

type RentalType string

const (
	RentalDaily  RentalType = "daily"
	RentalHourly RentalType = "hourly"
)

// Rental dates are calendar dates in "2006-01-02" form, times are optional
// "15:04" time-of-day bounds on the start and end dates. A rental with no
// times occupies its full calendar day range.
type Rental struct {
	ID               int64        `json:"id"`
	CameraID         int64        `json:"camera_id" validate:"required"`
	CustomerID       int64        `json:"customer_id" validate:"required"`
	StartDate        string       `json:"start_date" validate:"required"`
	EndDate          string       `json:"end_date" validate:"required"`
	StartTime        *string      `json:"start_time"`
	EndTime          *string      `json:"end_time"`
	ActualReturnDate *string      `json:"actual_return_date,omitempty"`
	ActualReturnTime *string      `json:"actual_return_time,omitempty"`
	DailyRate        float64      `json:"daily_rate"`
	HourlyRate       *float64     `json:"hourly_rate,omitempty"`
	TotalAmount      float64      `json:"total_amount"`
	Deposit          float64      `json:"deposit"`
	Status           RentalStatus `json:"status"`
	RentalType       RentalType   `json:"rental_type"`
	Notes            string       `json:"notes,omitempty"`
	CalendarEventID  *string      `json:"calendar_event_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
