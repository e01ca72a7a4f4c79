package customer

import (
	"context"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type CustomerRepository interface {
	List(ctx context.Context, search string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
	HasActiveForCustomer(ctx context.Context, customerID int64) (bool, error)
}

type CameraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camera, error)
}
