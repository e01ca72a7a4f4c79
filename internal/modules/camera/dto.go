package camera

// CameraRequest is the body for both create and update; updates replace the
// stored record. An empty serial number is stored as NULL so the unique index
// ignores it.
type CameraRequest struct {
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	Model         string   `json:"model" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	SerialNumber  string   `json:"serial_number"`
	PurchaseDate  string   `json:"purchase_date"`
	PurchasePrice *float64 `json:"purchase_price"`
	DailyRate     float64  `json:"daily_rate" validate:"required,gt=0"`
	HourlyRate    *float64 `json:"hourly_rate"`
	Status        string   `json:"status" validate:"omitempty,oneof=available rented maintenance"`
	Condition     string   `json:"condition"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
}

// ListQuery are the supported list filters. When both window bounds are set
// the list keeps only cameras free for that window.
type ListQuery struct {
	Status        string
	Category      string
	Search        string
	AvailableFrom string
	AvailableTo   string
	StartTime     *string
	EndTime       *string
}
