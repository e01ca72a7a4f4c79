package domain

import "time"

type CameraStatus string

const (
	CameraAvailable   CameraStatus = "available"
	CameraRented      CameraStatus = "rented"
	CameraMaintenance CameraStatus = "maintenance"
)

type Camera struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name" validate:"required"`
	Brand         string       `json:"brand" validate:"required"`
	Model         string       `json:"model" validate:"required"`
	Category      string       `json:"category" validate:"required"`
	SerialNumber  *string      `json:"serial_number,omitempty"`
	PurchaseDate  *string      `json:"purchase_date,omitempty"`
	PurchasePrice *float64     `json:"purchase_price,omitempty"`
	DailyRate     float64      `json:"daily_rate" validate:"required,gt=0"`
	HourlyRate    *float64     `json:"hourly_rate,omitempty"`
	Status        CameraStatus `json:"status"`
	Condition     string       `json:"condition,omitempty"`
	Description   string       `json:"description,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
