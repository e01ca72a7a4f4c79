package customer

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"lensycam/internal/domain"
	"lensycam/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 21
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) List(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) HasActiveForCustomer(ctx context.Context, customerID int64) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockCameraRepository struct {
	mock.Mock
}

func (m *MockCameraRepository) GetByID(ctx context.Context, id int64) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}

func TestGet_IncludesRentalHistory(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Customer{ID: 3, Name: "Linh Tran", Phone: "0901234567"}, nil)
	rentals.On("List", mock.Anything, repository.RentalFilter{CustomerID: 3}).
		Return([]domain.Rental{
			{ID: 8, CameraID: 7, StartDate: "2025-12-20", EndDate: "2025-12-22", TotalAmount: 450, Status: domain.RentalActive},
			{ID: 4, CameraID: 7, StartDate: "2025-11-01", EndDate: "2025-11-02", TotalAmount: 300, Status: domain.RentalCompleted},
		}, nil)
	cameras.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Camera{ID: 7, Name: "A7 IV"}, nil).Once() // cached for the second rental

	service := NewService(customers, rentals, cameras)

	details, err := service.Get(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Linh Tran", details.Name)
	require.Len(t, details.Rentals, 2)
	assert.Equal(t, "A7 IV", details.Rentals[0].CameraName)
	assert.Equal(t, "active", details.Rentals[0].Status)
	cameras.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(customers, rentals, cameras)

	_, err := service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_AssignsID(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(customers, rentals, cameras)

	cust, err := service.Create(context.Background(), CustomerRequest{Name: "Linh Tran", Phone: "0901234567"})

	require.NoError(t, err)
	assert.Equal(t, int64(21), cust.ID)
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Customer{ID: 3, Name: "Linh Tran", Phone: "0901234567"}, nil)
	customers.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == 3 && c.Phone == "0907654321"
	})).Return(nil)

	service := NewService(customers, rentals, cameras)

	cust, err := service.Update(context.Background(), 3, CustomerRequest{Name: "Linh Tran", Phone: "0907654321"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), cust.ID)
	customers.AssertExpectations(t)
}

func TestDelete_RefusedWithActiveRentals(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Customer{ID: 3}, nil)
	rentals.On("HasActiveForCustomer", mock.Anything, int64(3)).Return(true, nil)

	service := NewService(customers, rentals, cameras)

	err := service.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrHasRentals)
	customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	customers := new(MockCustomerRepository)
	rentals := new(MockRentalRepository)
	cameras := new(MockCameraRepository)

	customers.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Customer{ID: 3}, nil)
	rentals.On("HasActiveForCustomer", mock.Anything, int64(3)).Return(false, nil)
	customers.On("Delete", mock.Anything, int64(3)).Return(nil)

	service := NewService(customers, rentals, cameras)

	require.NoError(t, service.Delete(context.Background(), 3))
	customers.AssertExpectations(t)
}
