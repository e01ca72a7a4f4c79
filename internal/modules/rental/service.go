package rental

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
	"lensycam/internal/schedule"
)

type Service struct {
	rentals   RentalRepository
	cameras   CameraRepository
	customers CustomerRepository
	mirror    CalendarMirror
}

func NewService(rentals RentalRepository, cameras CameraRepository, customers CustomerRepository, mirror CalendarMirror) *Service {
	return &Service{
		rentals:   rentals,
		cameras:   cameras,
		customers: customers,
		mirror:    mirror,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	camera, err := s.cameras.GetByID(ctx, req.CameraID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCameraNotFound
		}
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	endDate := req.EndDate
	if endDate == "" {
		endDate = req.StartDate
	}

	candidate, err := schedule.EffectiveInterval(req.StartDate, endDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	dailyRate := req.DailyRate
	if dailyRate <= 0 {
		dailyRate = camera.DailyRate
	}

	total := req.CustomTotalAmount
	if total <= 0 {
		total, err = schedule.TotalAmount(req.StartDate, endDate, req.StartTime, req.EndTime, dailyRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	rentalType := domain.RentalDaily
	if schedule.HasTime(req.StartTime) && schedule.HasTime(req.EndTime) {
		rentalType = domain.RentalHourly
	}

	r := &domain.Rental{
		CameraID:    req.CameraID,
		CustomerID:  req.CustomerID,
		StartDate:   req.StartDate,
		EndDate:     endDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		DailyRate:   dailyRate,
		HourlyRate:  camera.HourlyRate,
		TotalAmount: total,
		Deposit:     req.Deposit,
		Status:      domain.RentalActive,
		RentalType:  rentalType,
		Notes:       req.Notes,
	}

	conflict, err := s.rentals.SaveIfNoConflict(ctx, r, func(existing []domain.Rental) (*domain.Rental, error) {
		return schedule.FindConflict(candidate, existing)
	})
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, &ConflictError{Rental: conflict}
	}

	s.mirrorCreate(ctx, r, camera, customer)

	return r, nil
}

// mirrorCreate pushes the rental to the calendar. Failures never fail the
// booking; the rental just keeps a null event id.
func (s *Service) mirrorCreate(ctx context.Context, r *domain.Rental, camera *domain.Camera, customer *domain.Customer) {
	if s.mirror == nil {
		return
	}

	eventID, err := s.mirror.CreateRentalEvent(ctx, r, camera, customer)
	if err != nil {
		log.Printf("calendar event create failed rental=%d: %v", r.ID, err)
		return
	}
	if err := s.rentals.SetCalendarEventID(ctx, r.ID, &eventID); err != nil {
		log.Printf("calendar event id save failed rental=%d: %v", r.ID, err)
		return
	}
	r.CalendarEventID = &eventID
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRentalRequest) (*domain.Rental, error) {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	windowChanged := applyWindowEdits(r, req)

	if req.DailyRate != nil && *req.DailyRate > 0 {
		r.DailyRate = *req.DailyRate
	}
	if req.Deposit != nil {
		r.Deposit = *req.Deposit
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}
	if req.ActualReturnDate != nil {
		r.ActualReturnDate = req.ActualReturnDate
	}
	if req.Status != nil {
		switch domain.RentalStatus(*req.Status) {
		case domain.RentalActive, domain.RentalCompleted, domain.RentalCancelled:
			r.Status = domain.RentalStatus(*req.Status)
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
	}

	if req.CustomTotalAmount != nil && *req.CustomTotalAmount > 0 {
		r.TotalAmount = *req.CustomTotalAmount
	} else {
		total, err := schedule.TotalAmount(r.StartDate, r.EndDate, r.StartTime, r.EndTime, r.DailyRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		r.TotalAmount = total
	}

	if schedule.HasTime(r.StartTime) && schedule.HasTime(r.EndTime) {
		r.RentalType = domain.RentalHourly
	} else {
		r.RentalType = domain.RentalDaily
	}

	if r.Status == domain.RentalActive {
		// date/time edits re-run admission against the camera's other
		// active rentals
		candidate, err := schedule.EffectiveInterval(r.StartDate, r.EndDate, r.StartTime, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		conflict, err := s.rentals.SaveIfNoConflict(ctx, r, func(existing []domain.Rental) (*domain.Rental, error) {
			return schedule.FindConflict(candidate, existing)
		})
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, &ConflictError{Rental: conflict}
		}
	} else {
		if err := s.rentals.Update(ctx, r); err != nil {
			return nil, err
		}
	}

	switch r.Status {
	case domain.RentalCompleted:
		if err := s.cameras.SetStatus(ctx, r.CameraID, domain.CameraAvailable); err != nil {
			return nil, err
		}
	case domain.RentalCancelled:
		if err := s.cameras.SetStatus(ctx, r.CameraID, domain.CameraAvailable); err != nil {
			return nil, err
		}
		s.mirrorDelete(ctx, r, true)
	default:
		if windowChanged {
			s.mirrorUpdate(ctx, r)
		}
	}

	return r, nil
}

// applyWindowEdits merges date/time edits into the rental and reports whether
// the occupied window changed. An explicit empty time clears the bound.
func applyWindowEdits(r *domain.Rental, req UpdateRentalRequest) bool {
	changed := false

	if req.StartDate != nil && *req.StartDate != "" && *req.StartDate != r.StartDate {
		r.StartDate = *req.StartDate
		changed = true
	}
	if req.EndDate != nil && *req.EndDate != "" && *req.EndDate != r.EndDate {
		r.EndDate = *req.EndDate
		changed = true
	}
	if req.StartTime != nil {
		v := normalizeTime(req.StartTime)
		if !timesEqual(r.StartTime, v) {
			r.StartTime = v
			changed = true
		}
	}
	if req.EndTime != nil {
		v := normalizeTime(req.EndTime)
		if !timesEqual(r.EndTime, v) {
			r.EndTime = v
			changed = true
		}
	}
	return changed
}

func normalizeTime(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}

func timesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *Service) mirrorUpdate(ctx context.Context, r *domain.Rental) {
	if s.mirror == nil || r.CalendarEventID == nil {
		return
	}

	camera, err := s.cameras.GetByID(ctx, r.CameraID)
	if err != nil {
		log.Printf("calendar event update failed rental=%d: %v", r.ID, err)
		return
	}
	customer, err := s.customers.GetByID(ctx, r.CustomerID)
	if err != nil {
		log.Printf("calendar event update failed rental=%d: %v", r.ID, err)
		return
	}
	if err := s.mirror.UpdateRentalEvent(ctx, *r.CalendarEventID, r, camera, customer); err != nil {
		log.Printf("calendar event update failed rental=%d: %v", r.ID, err)
	}
}

func (s *Service) mirrorDelete(ctx context.Context, r *domain.Rental, clearID bool) {
	if s.mirror == nil || r.CalendarEventID == nil {
		return
	}

	if err := s.mirror.DeleteRentalEvent(ctx, *r.CalendarEventID); err != nil {
		log.Printf("calendar event delete failed rental=%d: %v", r.ID, err)
		return
	}
	if clearID {
		if err := s.rentals.SetCalendarEventID(ctx, r.ID, nil); err != nil {
			log.Printf("calendar event id clear failed rental=%d: %v", r.ID, err)
			return
		}
		r.CalendarEventID = nil
	}
}

// Return completes the rental and frees the camera. The return date defaults
// to today (UTC).
func (s *Service) Return(ctx context.Context, id int64, actualReturnDate string) (*domain.Rental, error) {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actualReturnDate == "" {
		actualReturnDate = time.Now().UTC().Format(schedule.DateLayout)
	}

	if err := s.rentals.MarkReturned(ctx, r.ID, actualReturnDate); err != nil {
		return nil, err
	}
	if err := s.cameras.SetStatus(ctx, r.CameraID, domain.CameraAvailable); err != nil {
		return nil, err
	}

	return s.rentals.GetByID(ctx, r.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if r.Status == domain.RentalActive {
		if err := s.cameras.SetStatus(ctx, r.CameraID, domain.CameraAvailable); err != nil {
			return err
		}
	}

	s.mirrorDelete(ctx, r, false)

	return s.rentals.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*RentalDetails, error) {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	details, err := s.withDetails(ctx, []domain.Rental{*r})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *Service) List(ctx context.Context, f repository.RentalFilter) ([]RentalDetails, error) {
	rentals, err := s.rentals.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.withDetails(ctx, rentals)
}

func (s *Service) withDetails(ctx context.Context, rentals []domain.Rental) ([]RentalDetails, error) {
	cameras := make(map[int64]*domain.Camera)
	customers := make(map[int64]*domain.Customer)

	out := make([]RentalDetails, 0, len(rentals))
	for _, r := range rentals {
		cam, ok := cameras[r.CameraID]
		if !ok {
			var err error
			cam, err = s.cameras.GetByID(ctx, r.CameraID)
			if err != nil {
				return nil, err
			}
			cameras[r.CameraID] = cam
		}

		cust, ok := customers[r.CustomerID]
		if !ok {
			var err error
			cust, err = s.customers.GetByID(ctx, r.CustomerID)
			if err != nil {
				return nil, err
			}
			customers[r.CustomerID] = cust
		}

		out = append(out, RentalDetails{
			Rental:          r,
			CameraName:      cam.Name,
			CameraBrand:     cam.Brand,
			CameraModel:     cam.Model,
			CameraCategory:  cam.Category,
			SerialNumber:    cam.SerialNumber,
			CustomerName:    cust.Name,
			CustomerPhone:   cust.Phone,
			CustomerEmail:   cust.Email,
			CustomerAddress: cust.Address,
		})
	}
	return out, nil
}
