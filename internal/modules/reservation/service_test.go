package reservation

import (
	"context"
	"testing"

	"makeupshop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockModelRepository struct {
	mock.Mock
}

func (m *MockModelRepository) GetByID(ctx context.Context, id int64) (*domain.Model, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByArtistID(ctx context.Context, artistID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newTestService() (*Service, *MockModelRepository, *MockArtistRepository, *MockPortfolioRepository, *MockReservationRepository) {
	models := new(MockModelRepository)
	artists := new(MockArtistRepository)
	portfolios := new(MockPortfolioRepository)
	reservations := new(MockReservationRepository)
	return NewService(models, artists, portfolios, reservations), models, artists, portfolios, reservations
}

func TestService_Create_Success(t *testing.T) {
	svc, models, _, portfolios, reservations := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	portfolios.On("GetByID", mock.Anything, int64(5)).Return(&domain.Portfolio{ID: 5}, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), CreateReservationRequest{
		ModelID:         1,
		PortfolioID:     5,
		ReservationDate: "2026-09-10",
		ReservationTime: "14:30",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, string(domain.ReservationExpected), resp.Status)
	assert.False(t, resp.HasReview)
}

func TestService_Create_BadDateFormat(t *testing.T) {
	svc, models, _, _, reservations := newTestService()

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		ModelID:         1,
		PortfolioID:     5,
		ReservationDate: "10-09-2026",
		ReservationTime: "14:30",
	})

	assert.ErrorIs(t, err, ErrValidation)
	models.AssertNotCalled(t, "GetByID")
	reservations.AssertNotCalled(t, "Create")
}

func TestService_Create_BadTimeFormat(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		ModelID:         1,
		PortfolioID:     5,
		ReservationDate: "2026-09-10",
		ReservationTime: "2:30 PM",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_ModelNotFound(t *testing.T) {
	svc, models, _, _, reservations := newTestService()

	models.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		ModelID:         404,
		PortfolioID:     5,
		ReservationDate: "2026-09-10",
		ReservationTime: "14:30",
	})

	assert.ErrorIs(t, err, ErrModelNotFound)
	reservations.AssertNotCalled(t, "Create")
}

func TestService_Create_PortfolioNotFound(t *testing.T) {
	svc, models, _, portfolios, _ := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	portfolios.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		ModelID:         1,
		PortfolioID:     404,
		ReservationDate: "2026-09-10",
		ReservationTime: "14:30",
	})

	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestService_UpdateStatus_Success(t *testing.T) {
	svc, _, _, _, reservations := newTestService()

	reservations.On("UpdateStatus", mock.Anything, int64(7), domain.ReservationComplete).Return(nil)

	err := svc.UpdateStatus(context.Background(), 7, UpdateStatusRequest{Status: "COMPLETE"})

	assert.NoError(t, err)
	reservations.AssertExpectations(t)
}

// Status values are validated against the enum only; any valid target
// is accepted, including moving a COMPLETE reservation back to EXPECTED.
func TestService_UpdateStatus_RegressionAllowed(t *testing.T) {
	svc, _, _, _, reservations := newTestService()

	reservations.On("UpdateStatus", mock.Anything, int64(7), domain.ReservationExpected).Return(nil)

	err := svc.UpdateStatus(context.Background(), 7, UpdateStatusRequest{Status: "EXPECTED"})

	assert.NoError(t, err)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	svc, _, _, _, reservations := newTestService()

	err := svc.UpdateStatus(context.Background(), 7, UpdateStatusRequest{Status: "DONE"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	reservations.AssertNotCalled(t, "UpdateStatus")
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _, _, reservations := newTestService()

	reservations.On("UpdateStatus", mock.Anything, int64(404), domain.ReservationCancel).Return(gorm.ErrRecordNotFound)

	err := svc.UpdateStatus(context.Background(), 404, UpdateStatusRequest{Status: "CANCEL"})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_ListByModel_Success(t *testing.T) {
	svc, models, _, _, reservations := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reservations.On("GetByModelID", mock.Anything, int64(1)).Return([]domain.Reservation{
		{ID: 10, ModelID: 1, PortfolioID: 5, Status: domain.ReservationExpected},
		{ID: 11, ModelID: 1, PortfolioID: 6, Status: domain.ReservationComplete, HasReview: true},
	}, nil)

	rows, err := svc.ListByModel(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "COMPLETE", rows[1].Status)
	assert.True(t, rows[1].HasReview)
}

func TestService_ListByModel_ModelNotFound(t *testing.T) {
	svc, models, _, _, reservations := newTestService()

	models.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListByModel(context.Background(), 404)

	assert.ErrorIs(t, err, ErrModelNotFound)
	reservations.AssertNotCalled(t, "GetByModelID")
}

func TestService_ListByArtist_Success(t *testing.T) {
	svc, _, artists, _, reservations := newTestService()

	artists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Artist{ID: 2}, nil)
	reservations.On("GetByArtistID", mock.Anything, int64(2)).Return([]domain.Reservation{
		{ID: 10, ModelID: 1, PortfolioID: 5, Status: domain.ReservationAccepted},
	}, nil)

	rows, err := svc.ListByArtist(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "ACCEPTED", rows[0].Status)
}

func TestService_ListByArtist_ArtistNotFound(t *testing.T) {
	svc, _, artists, _, _ := newTestService()

	artists.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListByArtist(context.Background(), 404)

	assert.ErrorIs(t, err, ErrArtistNotFound)
}
