package customer

import "errors"

var (
	ErrNotFound   = errors.New("customer not found")
	ErrHasRentals = errors.New("customer has active rentals")
)
