// Package calendar mirrors rentals into a Google Calendar. Mirroring is
// best-effort: callers log failures and carry on, a rental is never blocked
// or rolled back because the calendar was unreachable.
package calendar

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"lensycam/internal/domain"
	"lensycam/internal/schedule"
)

const eventColorID = "9" // blue

type Service struct {
	srv        *gcal.Service
	calendarID string
}

// New builds a calendar client from a service-account key file.
func New(ctx context.Context, keyFile, calendarID string) (*Service, error) {
	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("read service account key: %w", err)
	}

	srv, err := gcal.NewService(ctx, option.WithAuthCredentialsJSON(option.ServiceAccount, data))
	if err != nil {
		return nil, err
	}

	return &Service{srv: srv, calendarID: calendarID}, nil
}

func (s *Service) CreateRentalEvent(ctx context.Context, rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) (string, error) {
	ev := buildEvent(rental, camera, customer)
	created, err := s.srv.Events.Insert(s.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (s *Service) UpdateRentalEvent(ctx context.Context, eventID string, rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) error {
	ev := buildEvent(rental, camera, customer)
	_, err := s.srv.Events.Update(s.calendarID, eventID, ev).Context(ctx).Do()
	return err
}

func (s *Service) DeleteRentalEvent(ctx context.Context, eventID string) error {
	return s.srv.Events.Delete(s.calendarID, eventID).Context(ctx).Do()
}

func buildEvent(rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) *gcal.Event {
	ev := &gcal.Event{
		Summary:     fmt.Sprintf("📷 %s - %s", camera.Name, customer.Name),
		Description: buildDescription(rental, camera, customer),
		ColorId:     eventColorID,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if schedule.HasTime(rental.StartTime) && schedule.HasTime(rental.EndTime) {
		ev.Start = &gcal.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00Z", rental.StartDate, *rental.StartTime),
		}
		ev.End = &gcal.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00Z", rental.EndDate, *rental.EndTime),
		}
		return ev
	}

	// all-day events use an exclusive end date
	ev.Start = &gcal.EventDateTime{Date: rental.StartDate}
	ev.End = &gcal.EventDateTime{Date: nextDay(rental.EndDate)}
	return ev
}

func buildDescription(rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) string {
	lines := []string{
		fmt.Sprintf("Customer: %s", customer.Name),
	}
	if customer.Phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", customer.Phone))
	}
	lines = append(lines, fmt.Sprintf("Camera: %s %s", camera.Brand, camera.Model))
	if rental.TotalAmount > 0 {
		lines = append(lines, fmt.Sprintf("Total: %.2f", rental.TotalAmount))
	}
	if rental.Deposit > 0 {
		lines = append(lines, fmt.Sprintf("Deposit: %.2f", rental.Deposit))
	}
	if rental.Notes != "" {
		lines = append(lines, "", fmt.Sprintf("Notes: %s", rental.Notes))
	}
	return strings.Join(lines, "\n")
}

func nextDay(date string) string {
	d, err := time.ParseInLocation(schedule.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, 1).Format(schedule.DateLayout)
}
