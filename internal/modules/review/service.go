package review

import (
	"context"
	"errors"

	"makeupshop/internal/domain"
	"makeupshop/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 200

type Service struct {
	models       ModelRepository
	reservations ReservationRepository
	reviews      ReviewRepository
}

func NewService(models ModelRepository, reservations ReservationRepository, reviews ReviewRepository) *Service {
	return &Service{models: models, reservations: reservations, reviews: reviews}
}

// Create files the one review a completed reservation is entitled to.
// The reservation lookup is scoped to the requesting model, so a
// reservation owned by someone else reads as not found. On success the
// review insert, the has_review flip and the portfolio's average-stars
// recompute commit as a single transaction inside the repository.
func (s *Service) Create(ctx context.Context, modelID int64, req CreateReviewRequest) (*ReviewResponse, error) {
	if req.Star < 1 || req.Star > 5 || len(req.Comment) > maxCommentLength {
		return nil, ErrInvalidRequest
	}

	model, err := s.models.GetByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	rv, err := s.reservations.GetByIDForModel(ctx, req.ReservationID, model.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if rv.HasReview {
		return nil, ErrAlreadyReviewed
	}
	if rv.Status != domain.ReservationComplete {
		return nil, ErrInvalidReviewState
	}

	images := make([]domain.ReviewImage, 0, len(req.ImgSrcs))
	for _, src := range req.ImgSrcs {
		images = append(images, domain.ReviewImage{Src: src})
	}

	review := &domain.Review{
		PortfolioID: rv.PortfolioID,
		ModelID:     model.ID,
		Star:        req.Star,
		Comment:     req.Comment,
		Images:      images,
	}

	if err := s.reviews.CreateForReservation(ctx, review, rv.ID); err != nil {
		if errors.Is(err, repository.ErrReviewFlagTaken) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	resp := toReviewResponse(review)
	return &resp, nil
}

func (s *Service) ListByPortfolio(ctx context.Context, portfolioID int64) ([]ReviewResponse, error) {
	rows, err := s.reviews.GetByPortfolioID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(rows), nil
}

// ListByModel returns the reviews a model has written, newest first.
func (s *Service) ListByModel(ctx context.Context, modelID int64) ([]ReviewResponse, error) {
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	rows, err := s.reviews.GetByModelID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(rows), nil
}

func toReviewResponses(rows []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toReviewResponse(&rows[i]))
	}
	return out
}
