package camera

import "errors"

var (
	ErrNotFound      = errors.New("camera not found")
	ErrHasRentals    = errors.New("camera has active rentals")
	ErrInvalidWindow = errors.New("invalid availability window")
)
