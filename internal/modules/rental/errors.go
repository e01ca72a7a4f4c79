package rental

import (
	"errors"

	"lensycam/internal/domain"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("rental not found")
	ErrCameraNotFound   = errors.New("camera not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ConflictError is returned when admission finds an overlapping active rental
// for the same camera. It carries the conflicting rental so the caller can
// report which window is occupied.
type ConflictError struct {
	Rental *domain.Rental
}

func (e *ConflictError) Error() string {
	return "camera is already rented during this time period"
}
