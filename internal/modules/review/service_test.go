package review

import (
	"context"
	"strings"
	"testing"

	"makeupshop/internal/domain"
	"makeupshop/internal/repository"

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

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByIDForModel(ctx context.Context, id, modelID int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateForReservation(ctx context.Context, rv *domain.Review, reservationID int64) error {
	args := m.Called(ctx, rv, reservationID)
	if rv != nil {
		rv.ID = 500 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByPortfolioID(ctx context.Context, portfolioID int64) ([]domain.Review, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.Review, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func newTestService() (*Service, *MockModelRepository, *MockReservationRepository, *MockReviewRepository) {
	models := new(MockModelRepository)
	reservations := new(MockReservationRepository)
	reviews := new(MockReviewRepository)
	return NewService(models, reservations, reviews), models, reservations, reviews
}

func TestService_Create_Success(t *testing.T) {
	svc, models, reservations, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reservations.On("GetByIDForModel", mock.Anything, int64(10), int64(1)).Return(&domain.Reservation{
		ID:          10,
		ModelID:     1,
		PortfolioID: 5,
		Status:      domain.ReservationComplete,
		HasReview:   false,
	}, nil)
	reviews.On("CreateForReservation", mock.Anything, mock.Anything, int64(10)).Return(nil)

	resp, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		ReservationID: 10,
		Star:          5,
		Comment:       "Lasted the whole shoot.",
		ImgSrcs:       []string{"/static/reviews/1.jpg"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, int64(5), resp.PortfolioID)
	assert.Equal(t, 5, resp.Star)
	assert.Equal(t, []string{"/static/reviews/1.jpg"}, resp.ImgSrcs)
}

func TestService_Create_StarOutOfRange(t *testing.T) {
	svc, models, _, _ := newTestService()

	for _, star := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), 1, CreateReviewRequest{
			ReservationID: 10,
			Star:          star,
		})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
	models.AssertNotCalled(t, "GetByID")
}

func TestService_Create_CommentTooLong(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		ReservationID: 10,
		Star:          4,
		Comment:       strings.Repeat("a", 201),
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Create_ReservationNotFoundForModel(t *testing.T) {
	svc, models, reservations, reviews := newTestService()

	// reservation 10 belongs to another model; the scoped lookup misses
	models.On("GetByID", mock.Anything, int64(2)).Return(&domain.Model{ID: 2}, nil)
	reservations.On("GetByIDForModel", mock.Anything, int64(10), int64(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 2, CreateReviewRequest{
		ReservationID: 10,
		Star:          5,
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
	reviews.AssertNotCalled(t, "CreateForReservation")
}

func TestService_Create_NotComplete(t *testing.T) {
	svc, models, reservations, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reservations.On("GetByIDForModel", mock.Anything, int64(10), int64(1)).Return(&domain.Reservation{
		ID:          10,
		ModelID:     1,
		PortfolioID: 5,
		Status:      domain.ReservationExpected,
	}, nil)

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		ReservationID: 10,
		Star:          5,
	})

	assert.ErrorIs(t, err, ErrInvalidReviewState)
	reviews.AssertNotCalled(t, "CreateForReservation")
}

func TestService_Create_AlreadyReviewed(t *testing.T) {
	svc, models, reservations, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reservations.On("GetByIDForModel", mock.Anything, int64(10), int64(1)).Return(&domain.Reservation{
		ID:          10,
		ModelID:     1,
		PortfolioID: 5,
		Status:      domain.ReservationComplete,
		HasReview:   true,
	}, nil)

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		ReservationID: 10,
		Star:          5,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	reviews.AssertNotCalled(t, "CreateForReservation")
}

// A second writer can flip has_review between our read and the commit.
// The repository reports the lost race and it surfaces as AlreadyReviewed.
func TestService_Create_FlagRaceLost(t *testing.T) {
	svc, models, reservations, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reservations.On("GetByIDForModel", mock.Anything, int64(10), int64(1)).Return(&domain.Reservation{
		ID:          10,
		ModelID:     1,
		PortfolioID: 5,
		Status:      domain.ReservationComplete,
	}, nil)
	reviews.On("CreateForReservation", mock.Anything, mock.Anything, int64(10)).Return(repository.ErrReviewFlagTaken)

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		ReservationID: 10,
		Star:          5,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_ListByModel(t *testing.T) {
	svc, models, _, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(1)).Return(&domain.Model{ID: 1}, nil)
	reviews.On("GetByModelID", mock.Anything, int64(1)).Return([]domain.Review{
		{ID: 2, PortfolioID: 6, ModelID: 1, Star: 4},
		{ID: 1, PortfolioID: 5, ModelID: 1, Star: 5},
	}, nil)

	rows, err := svc.ListByModel(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestService_ListByModel_ModelNotFound(t *testing.T) {
	svc, models, _, reviews := newTestService()

	models.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListByModel(context.Background(), 404)

	assert.ErrorIs(t, err, ErrModelNotFound)
	reviews.AssertNotCalled(t, "GetByModelID")
}

func TestService_ListByPortfolio(t *testing.T) {
	svc, _, _, reviews := newTestService()

	reviews.On("GetByPortfolioID", mock.Anything, int64(5)).Return([]domain.Review{
		{ID: 1, PortfolioID: 5, ModelID: 1, Star: 5, Comment: "great"},
		{ID: 2, PortfolioID: 5, ModelID: 2, Star: 3, Images: []domain.ReviewImage{{Src: "/static/r.jpg"}}},
	}, nil)

	rows, err := svc.ListByPortfolio(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"/static/r.jpg"}, rows[1].ImgSrcs)
}
