package camera

import (
	"context"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type CameraRepository interface {
	List(ctx context.Context, f repository.CameraFilter) ([]domain.Camera, error)
	GetByID(ctx context.Context, id int64) (*domain.Camera, error)
	Create(ctx context.Context, c *domain.Camera) error
	Update(ctx context.Context, c *domain.Camera) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	ListActiveBetween(ctx context.Context, startDate, endDate string) ([]domain.Rental, error)
	HasActiveForCamera(ctx context.Context, cameraID int64) (bool, error)
}
