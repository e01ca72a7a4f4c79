package availability

import (
	"context"
	"fmt"

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

// FreeCameras lists the cameras rentable for the requested window: status
// available and no overlapping active rental. The same overlap rule decides
// here and at booking time, so a camera listed free is guaranteed to pass
// admission for the same window.
func (s *Service) FreeCameras(ctx context.Context, q Query) ([]domain.Camera, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return nil, ErrMissingDates
	}

	window, err := schedule.EffectiveInterval(q.StartDate, q.EndDate, q.StartTime, q.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	cameras, err := s.cameras.List(ctx, repository.CameraFilter{Status: string(domain.CameraAvailable)})
	if err != nil {
		return nil, err
	}

	rentals, err := s.rentals.ListActiveBetween(ctx, q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	byCamera := make(map[int64][]domain.Rental)
	for _, r := range rentals {
		byCamera[r.CameraID] = append(byCamera[r.CameraID], r)
	}

	free := make([]domain.Camera, 0, len(cameras))
	for _, cam := range cameras {
		conflict, err := schedule.FindConflict(window, byCamera[cam.ID])
		if err != nil {
			return nil, err
		}
		if conflict == nil {
			free = append(free, cam)
		}
	}
	return free, nil
}
