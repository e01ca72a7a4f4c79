package camera

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
	"lensycam/internal/schedule"
)

type Service struct {
	cameras CameraRepository
	rentals RentalRepository
}

func NewService(cameras CameraRepository, rentals RentalRepository) *Service {
	return &Service{cameras: cameras, rentals: rentals}
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Camera, error) {
	cameras, err := s.cameras.List(ctx, repository.CameraFilter{
		Status:   q.Status,
		Category: q.Category,
		Search:   q.Search,
	})
	if err != nil {
		return nil, err
	}

	if q.AvailableFrom == "" && q.AvailableTo == "" {
		return cameras, nil
	}
	return s.filterFree(ctx, cameras, q)
}

// filterFree keeps only cameras with no active rental conflicting with the
// requested window. The rental set is narrowed by date range in SQL; the
// time-of-day decision happens here, through the same overlap rule admission
// uses.
func (s *Service) filterFree(ctx context.Context, cameras []domain.Camera, q ListQuery) ([]domain.Camera, error) {
	from := q.AvailableFrom
	to := q.AvailableTo
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}

	window, err := schedule.EffectiveInterval(from, to, q.StartTime, q.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	rentals, err := s.rentals.ListActiveBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byCamera := make(map[int64][]domain.Rental)
	for _, r := range rentals {
		byCamera[r.CameraID] = append(byCamera[r.CameraID], r)
	}

	out := make([]domain.Camera, 0, len(cameras))
	for _, cam := range cameras {
		conflict, err := schedule.FindConflict(window, byCamera[cam.ID])
		if err != nil {
			return nil, err
		}
		if conflict == nil {
			out = append(out, cam)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Camera, error) {
	cam, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cam, nil
}

func (s *Service) Create(ctx context.Context, req CameraRequest) (*domain.Camera, error) {
	cam := fromRequest(req)
	if cam.Status == "" {
		cam.Status = domain.CameraAvailable
	}
	if err := s.cameras.Create(ctx, cam); err != nil {
		return nil, err
	}
	return cam, nil
}

func (s *Service) Update(ctx context.Context, id int64, req CameraRequest) (*domain.Camera, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cam := fromRequest(req)
	cam.ID = existing.ID
	cam.CreatedAt = existing.CreatedAt
	if cam.Status == "" {
		cam.Status = existing.Status
	}

	if err := s.cameras.Update(ctx, cam); err != nil {
		return nil, err
	}
	return cam, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	busy, err := s.rentals.HasActiveForCamera(ctx, id)
	if err != nil {
		return err
	}
	if busy {
		return ErrHasRentals
	}

	return s.cameras.Delete(ctx, id)
}

func fromRequest(req CameraRequest) *domain.Camera {
	cam := &domain.Camera{
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		DailyRate:     req.DailyRate,
		HourlyRate:    req.HourlyRate,
		Status:        domain.CameraStatus(req.Status),
		Condition:     req.Condition,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	if req.SerialNumber != "" {
		cam.SerialNumber = &req.SerialNumber
	}
	if req.PurchaseDate != "" {
		cam.PurchaseDate = &req.PurchaseDate
	}
	return cam
}
