package schedule

import (
	"testing"
	"time"

	"lensycam/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func mustInterval(t *testing.T, startDate, endDate string, startTime, endTime *string) Interval {
	t.Helper()
	iv, err := EffectiveInterval(startDate, endDate, startTime, endTime)
	require.NoError(t, err)
	return iv
}

func TestEffectiveInterval_FillsFullDayBounds(t *testing.T) {
	iv := mustInterval(t, "2025-12-20", "2025-12-22", nil, nil)

	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2025, 12, 22, 23, 59, 0, 0, time.UTC), iv.End)
}

func TestEffectiveInterval_EmptyTimeStringsTreatedAsMissing(t *testing.T) {
	iv := mustInterval(t, "2025-12-20", "2025-12-20", strp(""), strp(""))

	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2025, 12, 20, 23, 59, 0, 0, time.UTC), iv.End)
}

func TestEffectiveInterval_Invalid(t *testing.T) {
	_, err := EffectiveInterval("2025-13-01", "2025-12-20", nil, nil)
	assert.Error(t, err)

	_, err = EffectiveInterval("2025-12-21", "2025-12-20", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// same day but end time before start time
	_, err = EffectiveInterval("2025-12-20", "2025-12-20", strp("15:00"), strp("09:00"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverlaps_Symmetric(t *testing.T) {
	a := mustInterval(t, "2025-12-20", "2025-12-20", strp("06:30"), strp("11:30"))
	b := mustInterval(t, "2025-12-20", "2025-12-20", strp("10:00"), strp("12:00"))
	c := mustInterval(t, "2025-12-21", "2025-12-21", nil, nil)

	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	assert.Equal(t, a.Overlaps(c), c.Overlaps(a))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestOverlaps_Self(t *testing.T) {
	iv := mustInterval(t, "2025-12-20", "2025-12-24", nil, nil)
	assert.True(t, iv.Overlaps(iv))
}

func TestOverlaps_ClosedBoundaryPolicy(t *testing.T) {
	existing := mustInterval(t, "2025-12-20", "2025-12-20", strp("06:30"), strp("11:30"))

	// touching endpoints conflict: no zero-buffer back-to-back rentals
	touching := mustInterval(t, "2025-12-20", "2025-12-20", strp("11:30"), strp("12:00"))
	assert.True(t, existing.Overlaps(touching))

	// one minute of separation is enough
	buffered := mustInterval(t, "2025-12-20", "2025-12-20", strp("11:31"), strp("12:00"))
	assert.False(t, existing.Overlaps(buffered))
}

func TestOverlaps_NoTimeMeansFullDay(t *testing.T) {
	allDay := mustInterval(t, "2025-12-20", "2025-12-20", nil, nil)

	morning := mustInterval(t, "2025-12-20", "2025-12-20", strp("06:00"), strp("07:00"))
	night := mustInterval(t, "2025-12-20", "2025-12-20", strp("23:00"), strp("23:59"))
	nextDay := mustInterval(t, "2025-12-21", "2025-12-21", strp("06:00"), strp("07:00"))

	assert.True(t, allDay.Overlaps(morning))
	assert.True(t, allDay.Overlaps(night))
	assert.False(t, allDay.Overlaps(nextDay))
}

func TestOverlaps_MultiDayContainment(t *testing.T) {
	span := mustInterval(t, "2025-12-20", "2025-12-24", nil, nil)

	inside := mustInterval(t, "2025-12-22", "2025-12-22", strp("10:00"), strp("11:00"))
	assert.True(t, span.Overlaps(inside))

	// boundary dates are occupied through 23:59 / from 00:00
	lastDay := mustInterval(t, "2025-12-24", "2025-12-24", strp("23:00"), strp("23:59"))
	assert.True(t, span.Overlaps(lastDay))

	dayAfter := mustInterval(t, "2025-12-25", "2025-12-25", nil, nil)
	assert.False(t, span.Overlaps(dayAfter))
}

func TestFindConflict_Scenario(t *testing.T) {
	existing := []domain.Rental{
		{ID: 1, StartDate: "2025-12-20", EndDate: "2025-12-20", StartTime: strp("06:30"), EndTime: strp("11:30"), Status: domain.RentalActive},
		{ID: 2, StartDate: "2025-12-20", EndDate: "2025-12-20", StartTime: strp("18:00"), EndTime: strp("22:00"), Status: domain.RentalActive},
	}

	cases := []struct {
		name       string
		start, end string
		conflictID int64
	}{
		{"touches first rental boundary", "11:30", "12:00", 1},
		{"one minute after first rental", "11:31", "12:00", 0},
		{"between the two rentals", "12:00", "13:00", 0},
		{"inside second rental", "18:00", "19:00", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := mustInterval(t, "2025-12-20", "2025-12-20", strp(tc.start), strp(tc.end))
			got, err := FindConflict(candidate, existing)
			require.NoError(t, err)
			if tc.conflictID == 0 {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tc.conflictID, got.ID)
			}
		})
	}
}

func TestFindConflict_Empty(t *testing.T) {
	candidate := mustInterval(t, "2025-12-20", "2025-12-20", nil, nil)
	got, err := FindConflict(candidate, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)

	past := domain.Rental{StartDate: "2025-12-20", EndDate: "2025-12-24", Status: domain.RentalActive}
	assert.True(t, IsOverdue(past, now))

	current := domain.Rental{StartDate: "2025-12-24", EndDate: "2025-12-26", Status: domain.RentalActive}
	assert.False(t, IsOverdue(current, now))

	returned := domain.Rental{StartDate: "2025-12-20", EndDate: "2025-12-24", Status: domain.RentalCompleted}
	assert.False(t, IsOverdue(returned, now))
}
