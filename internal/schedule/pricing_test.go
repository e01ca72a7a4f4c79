package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays_Inclusive(t *testing.T) {
	days, err := RentalDays("2025-12-20", "2025-12-20")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = RentalDays("2025-12-20", "2025-12-22")
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	// spans a month boundary
	days, err = RentalDays("2025-12-30", "2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, 4, days)
}

func TestRentalDays_Invalid(t *testing.T) {
	_, err := RentalDays("2025-12-22", "2025-12-20")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RentalDays("not-a-date", "2025-12-20")
	assert.Error(t, err)
}

func TestTotalAmount_DailyRental(t *testing.T) {
	total, err := TotalAmount("2025-12-20", "2025-12-22", nil, nil, 150)
	require.NoError(t, err)
	assert.Equal(t, 450.0, total)

	total, err = TotalAmount("2025-12-20", "2025-12-20", nil, nil, 150)
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)
}

func TestTotalAmount_HourlyRental(t *testing.T) {
	// 12 hours = half a day
	total, err := TotalAmount("2025-12-20", "2025-12-20", strp("08:00"), strp("20:00"), 100)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)

	// 2 hours hits the half-day floor
	total, err = TotalAmount("2025-12-20", "2025-12-20", strp("08:00"), strp("10:00"), 100)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)

	// 36 hours across two dates
	total, err = TotalAmount("2025-12-20", "2025-12-21", strp("08:00"), strp("20:00"), 100)
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)
}

func TestTotalAmount_SingleTimeFallsBackToDaily(t *testing.T) {
	// only one bound set: billed as whole calendar days
	total, err := TotalAmount("2025-12-20", "2025-12-21", strp("08:00"), nil, 100)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}
