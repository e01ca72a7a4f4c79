package customer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type Service struct {
	customers CustomerRepository
	rentals   RentalRepository
	cameras   CameraRepository
}

func NewService(customers CustomerRepository, rentals RentalRepository, cameras CameraRepository) *Service {
	return &Service{customers: customers, rentals: rentals, cameras: cameras}
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.customers.List(ctx, search)
}

// Get returns the customer together with their rental history.
func (s *Service) Get(ctx context.Context, id int64) (*CustomerDetails, error) {
	cust, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rentals, err := s.rentals.List(ctx, repository.RentalFilter{CustomerID: id})
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	history := make([]RentalSummary, 0, len(rentals))
	for _, r := range rentals {
		name, ok := names[r.CameraID]
		if !ok {
			cam, err := s.cameras.GetByID(ctx, r.CameraID)
			if err != nil {
				return nil, err
			}
			name = cam.Name
			names[r.CameraID] = name
		}
		history = append(history, RentalSummary{
			ID:          r.ID,
			CameraID:    r.CameraID,
			CameraName:  name,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			TotalAmount: r.TotalAmount,
			Status:      string(r.Status),
		})
	}

	return &CustomerDetails{Customer: *cust, Rentals: history}, nil
}

func (s *Service) Create(ctx context.Context, req CustomerRequest) (*domain.Customer, error) {
	cust := fromRequest(req)
	if err := s.customers.Create(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *Service) Update(ctx context.Context, id int64, req CustomerRequest) (*domain.Customer, error) {
	existing, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cust := fromRequest(req)
	cust.ID = existing.ID
	cust.CreatedAt = existing.CreatedAt

	if err := s.customers.Update(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	busy, err := s.rentals.HasActiveForCustomer(ctx, id)
	if err != nil {
		return err
	}
	if busy {
		return ErrHasRentals
	}

	return s.customers.Delete(ctx, id)
}

func fromRequest(req CustomerRequest) *domain.Customer {
	return &domain.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IDNumber: req.IDNumber,
		Notes:    req.Notes,
	}
}
