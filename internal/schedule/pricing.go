package schedule

import (
	"math"
	"time"
)

// minBillableDays is the floor for timed rentals shorter than half a day.
const minBillableDays = 0.5

// RentalDays returns the inclusive number of calendar days between two dates,
// so RentalDays(d, d) == 1. Dates are parsed as UTC calendar dates.
func RentalDays(startDate, endDate string) (int, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return 0, err
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.UTC)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// TotalAmount computes the billable amount for a rental window at the given
// daily rate. With both time bounds set the charge follows the actual
// duration in day-equivalents with a half-day floor; without times it is the
// inclusive calendar day count.
func TotalAmount(startDate, endDate string, startTime, endTime *string, dailyRate float64) (float64, error) {
	if HasTime(startTime) && HasTime(endTime) {
		iv, err := EffectiveInterval(startDate, endDate, startTime, endTime)
		if err != nil {
			return 0, err
		}
		days := iv.End.Sub(iv.Start).Hours() / 24
		if days < minBillableDays {
			days = minBillableDays
		}
		return round2(days * dailyRate), nil
	}

	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return round2(float64(days) * dailyRate), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
