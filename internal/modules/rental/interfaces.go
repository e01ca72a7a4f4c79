package rental

import (
	"context"

	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
	SaveIfNoConflict(ctx context.Context, rental *domain.Rental, check func(existing []domain.Rental) (*domain.Rental, error)) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	MarkReturned(ctx context.Context, id int64, returnDate string) error
	SetCalendarEventID(ctx context.Context, id int64, eventID *string) error
	Delete(ctx context.Context, id int64) error
}

type CameraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camera, error)
	SetStatus(ctx context.Context, id int64, status domain.CameraStatus) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// CalendarMirror pushes rentals into an external calendar. Implementations
// are best-effort collaborators; the service logs their failures and moves
// on.
type CalendarMirror interface {
	CreateRentalEvent(ctx context.Context, rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) (string, error)
	UpdateRentalEvent(ctx context.Context, eventID string, rental *domain.Rental, camera *domain.Camera, customer *domain.Customer) error
	DeleteRentalEvent(ctx context.Context, eventID string) error
}
