package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
	"lensycam/internal/schedule"
)

const (
	recentLimit    = 5
	trailingMonths = 6
)

type Service struct {
	rentals   RentalRepository
	cameras   CameraRepository
	customers CustomerRepository

	now func() time.Time
}

func NewService(rentals RentalRepository, cameras CameraRepository, customers CustomerRepository) *Service {
	return &Service{
		rentals:   rentals,
		cameras:   cameras,
		customers: customers,
		now:       time.Now,
	}
}

// Stats assembles the dashboard snapshot. Revenue buckets are aggregated in
// Go rather than SQL so the numbers come out the same on SQLite and
// Postgres.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()

	totalCameras, err := s.cameras.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	availableCameras, err := s.cameras.CountByStatus(ctx, domain.CameraAvailable)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.rentals.List(ctx, repository.RentalFilter{Status: string(domain.RentalActive)})
	if err != nil {
		return nil, err
	}

	overdue := 0
	rentedCameras := make(map[int64]struct{})
	for _, r := range active {
		rentedCameras[r.CameraID] = struct{}{}
		if schedule.IsOverdue(r, now) {
			overdue++
		}
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	seriesStart := firstOfMonth.AddDate(0, -(trailingMonths - 1), 0)

	// the all-time total needs every billable rental, so one unbounded
	// fetch feeds all three revenue buckets and the monthly series
	billable, err := s.rentals.ListNonCancelled(ctx)
	if err != nil {
		return nil, err
	}

	revenue, series := aggregateRevenue(billable, now, seriesStart)

	recent, err := s.recentRentals(ctx, active, now)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Cameras: CameraStats{
			Total:     totalCameras,
			Available: availableCameras,
			Rented:    int64(len(rentedCameras)),
		},
		Rentals: RentalStats{
			Active:  len(active),
			Overdue: overdue,
		},
		Customers:     CustomerStats{Total: totalCustomers},
		Revenue:       revenue,
		RecentRentals: recent,
		MonthlyData:   series,
	}, nil
}

// aggregateRevenue buckets non-cancelled rentals by start date into the
// current-month, current-year and all-time totals, plus the trailing monthly
// series starting at seriesStart.
func aggregateRevenue(rentals []domain.Rental, now, seriesStart time.Time) (RevenueStats, []MonthRevenue) {
	monthKey := now.Format("2006-01")
	yearKey := now.Format("2006")

	var rev RevenueStats
	byMonth := make(map[string]float64)

	for _, r := range rentals {
		rev.Total += r.TotalAmount
		if strings.HasPrefix(r.StartDate, yearKey+"-") {
			rev.Yearly += r.TotalAmount
		}
		if strings.HasPrefix(r.StartDate, monthKey+"-") {
			rev.Monthly += r.TotalAmount
		}
		if len(r.StartDate) >= 7 {
			byMonth[r.StartDate[:7]] += r.TotalAmount
		}
	}

	series := make([]MonthRevenue, 0, trailingMonths)
	for m := seriesStart; !m.After(now); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		series = append(series, MonthRevenue{Month: key, Revenue: byMonth[key]})
	}
	return rev, series
}

// recentRentals keeps the newest active rentals, resolved to display names.
// The repository already orders by start date descending.
func (s *Service) recentRentals(ctx context.Context, active []domain.Rental, now time.Time) ([]RecentRental, error) {
	if len(active) > recentLimit {
		active = active[:recentLimit]
	}

	cameraNames := make(map[int64]string)
	customerNames := make(map[int64]string)

	out := make([]RecentRental, 0, len(active))
	for _, r := range active {
		camName, ok := cameraNames[r.CameraID]
		if !ok {
			cam, err := s.cameras.GetByID(ctx, r.CameraID)
			if err != nil {
				return nil, fmt.Errorf("resolve camera %d: %w", r.CameraID, err)
			}
			camName = cam.Name
			cameraNames[r.CameraID] = camName
		}

		custName, ok := customerNames[r.CustomerID]
		if !ok {
			cust, err := s.customers.GetByID(ctx, r.CustomerID)
			if err != nil {
				return nil, fmt.Errorf("resolve customer %d: %w", r.CustomerID, err)
			}
			custName = cust.Name
			customerNames[r.CustomerID] = custName
		}

		out = append(out, RecentRental{
			ID:           r.ID,
			CameraName:   camName,
			CustomerName: custName,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			TotalAmount:  r.TotalAmount,
			Overdue:      schedule.IsOverdue(r, now),
		})
	}
	return out, nil
}
