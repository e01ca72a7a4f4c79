package availability

import (
	"context"
	"testing"

	"lensycam/internal/domain"
	"lensycam/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

type MockCameraRepository struct {
	mock.Mock
}

func (m *MockCameraRepository) List(ctx context.Context, f repository.CameraFilter) ([]domain.Camera, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) ListActiveBetween(ctx context.Context, startDate, endDate string) ([]domain.Rental, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func availableFleet() []domain.Camera {
	return []domain.Camera{
		{ID: 1, Name: "A7 IV", Status: domain.CameraAvailable},
		{ID: 2, Name: "R6 II", Status: domain.CameraAvailable},
	}
}

func newFixture(t *testing.T, active []domain.Rental) *Service {
	t.Helper()
	cameras := new(MockCameraRepository)
	rentals := new(MockRentalRepository)
	cameras.On("List", mock.Anything, repository.CameraFilter{Status: "available"}).
		Return(availableFleet(), nil)
	rentals.On("ListActiveBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(active, nil)
	return NewService(cameras, rentals)
}

func TestFreeCameras_MissingDates(t *testing.T) {
	service := newFixture(t, nil)

	_, err := service.FreeCameras(context.Background(), Query{StartDate: "2025-12-20"})
	assert.ErrorIs(t, err, ErrMissingDates)

	_, err = service.FreeCameras(context.Background(), Query{EndDate: "2025-12-20"})
	assert.ErrorIs(t, err, ErrMissingDates)
}

func TestFreeCameras_InvalidWindow(t *testing.T) {
	service := newFixture(t, []domain.Rental{})

	_, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-22",
		EndDate:   "2025-12-20",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestFreeCameras_NoBookings(t *testing.T) {
	service := newFixture(t, []domain.Rental{})

	got, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-20",
		EndDate:   "2025-12-21",
	})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFreeCameras_ExcludesOverlappingBooking(t *testing.T) {
	service := newFixture(t, []domain.Rental{
		{ID: 9, CameraID: 1, StartDate: "2025-12-21", EndDate: "2025-12-23", Status: domain.RentalActive},
	})

	got, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-20",
		EndDate:   "2025-12-21",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFreeCameras_TouchingTimesStillBlock(t *testing.T) {
	service := newFixture(t, []domain.Rental{
		{ID: 9, CameraID: 1, StartDate: "2025-12-20", EndDate: "2025-12-20", StartTime: strp("06:30"), EndTime: strp("11:30"), Status: domain.RentalActive},
	})

	got, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-20",
		EndDate:   "2025-12-20",
		StartTime: strp("11:30"),
		EndTime:   strp("12:00"),
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFreeCameras_OneMinuteBufferFreesCamera(t *testing.T) {
	service := newFixture(t, []domain.Rental{
		{ID: 9, CameraID: 1, StartDate: "2025-12-20", EndDate: "2025-12-20", StartTime: strp("06:30"), EndTime: strp("11:30"), Status: domain.RentalActive},
	})

	got, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-20",
		EndDate:   "2025-12-20",
		StartTime: strp("11:31"),
		EndTime:   strp("12:00"),
	})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFreeCameras_DateOnlyQueryBlockedByTimedBooking(t *testing.T) {
	// a date-only query occupies the whole day, so any booking that day
	// blocks it
	service := newFixture(t, []domain.Rental{
		{ID: 9, CameraID: 1, StartDate: "2025-12-20", EndDate: "2025-12-20", StartTime: strp("06:30"), EndTime: strp("07:30"), Status: domain.RentalActive},
	})

	got, err := service.FreeCameras(context.Background(), Query{
		StartDate: "2025-12-20",
		EndDate:   "2025-12-20",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
