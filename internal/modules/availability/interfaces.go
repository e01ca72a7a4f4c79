package availability

import (
	"context"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type CameraRepository interface {
	List(ctx context.Context, f repository.CameraFilter) ([]domain.Camera, error)
}

type RentalRepository interface {
	ListActiveBetween(ctx context.Context, startDate, endDate string) ([]domain.Rental, error)
}
