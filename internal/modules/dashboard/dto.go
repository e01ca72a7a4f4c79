package dashboard

type Stats struct {
	Cameras       CameraStats    `json:"cameras"`
	Rentals       RentalStats    `json:"rentals"`
	Customers     CustomerStats  `json:"customers"`
	Revenue       RevenueStats   `json:"revenue"`
	RecentRentals []RecentRental `json:"recentRentals"`
	MonthlyData   []MonthRevenue `json:"monthlyData"`
}

type CameraStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Rented    int64 `json:"rented"`
}

type RentalStats struct {
	Active  int `json:"active"`
	Overdue int `json:"overdue"`
}

type CustomerStats struct {
	Total int64 `json:"total"`
}

// RevenueStats sums total amounts of non-cancelled rentals, bucketed by
// start date.
type RevenueStats struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
	Total   float64 `json:"total"`
}

type RecentRental struct {
	ID           int64   `json:"id"`
	CameraName   string  `json:"camera_name"`
	CustomerName string  `json:"customer_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalAmount  float64 `json:"total_amount"`
	Overdue      bool    `json:"overdue"`
}

// MonthRevenue is one point of the trailing revenue series, month formatted
// as 2006-01.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
