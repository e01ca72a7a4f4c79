package availability

import "errors"

var (
	ErrMissingDates  = errors.New("start date and end date are required")
	ErrInvalidWindow = errors.New("invalid availability window")
)
