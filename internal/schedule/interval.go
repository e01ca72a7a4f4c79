// Package schedule holds the rental availability core: interval
// normalization, the overlap policy, and duration/price arithmetic. Both the
// availability search and rental admission go through this package so the two
// call sites can never disagree on boundary handling.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"lensycam/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidRange = errors.New("interval ends before it starts")

// Interval is a closed [Start, End] datetime range in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// EffectiveInterval normalizes a date range with optional time-of-day bounds
// into the closed interval the rental occupies. Missing times fill to full-day
// bounds: 00:00 on the start date, 23:59 on the end date. All arithmetic is
// done on UTC calendar dates so local timezone shifts cannot move a boundary.
func EffectiveInterval(startDate, endDate string, startTime, endTime *string) (Interval, error) {
	st := "00:00"
	if HasTime(startTime) {
		st = *startTime
	}
	et := "23:59"
	if HasTime(endTime) {
		et = *endTime
	}

	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, startDate+" "+st, time.UTC)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := time.ParseInLocation(DateLayout+" "+TimeLayout, endDate+" "+et, time.UTC)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end: %w", err)
	}
	if end.Before(start) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two closed intervals intersect. Touching endpoints
// count as an overlap: a rental ending at 11:30 blocks one starting at 11:30,
// which forces at least a one-minute handoff buffer between back-to-back
// rentals.
func (a Interval) Overlaps(b Interval) bool {
	return !a.End.Before(b.Start) && !b.End.Before(a.Start)
}

// RentalInterval returns the effective interval a rental occupies.
func RentalInterval(r domain.Rental) (Interval, error) {
	return EffectiveInterval(r.StartDate, r.EndDate, r.StartTime, r.EndTime)
}

// FindConflict returns the first rental in existing whose effective interval
// overlaps the candidate window, or nil when the window is free. Callers pass
// only active rentals; this function does not filter by status.
func FindConflict(candidate Interval, existing []domain.Rental) (*domain.Rental, error) {
	for i := range existing {
		iv, err := RentalInterval(existing[i])
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", existing[i].ID, err)
		}
		if candidate.Overlaps(iv) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// IsOverdue reports whether an active rental's effective end has passed.
func IsOverdue(r domain.Rental, now time.Time) bool {
	if r.Status != domain.RentalActive {
		return false
	}
	iv, err := RentalInterval(r)
	if err != nil {
		return false
	}
	return iv.End.Before(now)
}

// HasTime reports whether an optional time-of-day bound is actually set.
func HasTime(t *string) bool {
	return t != nil && *t != ""
}
