package dashboard

import (
	"context"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type RentalRepository interface {
	List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
	ListNonCancelled(ctx context.Context) ([]domain.Rental, error)
}

type CameraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camera, error)
	CountByStatus(ctx context.Context, status domain.CameraStatus) (int64, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}
