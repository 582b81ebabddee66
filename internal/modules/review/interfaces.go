package review

import (
	"context"

	"makeupshop/internal/domain"
)

type ModelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Model, error)
}

type ReservationRepository interface {
	GetByIDForModel(ctx context.Context, id, modelID int64) (*domain.Reservation, error)
}

type ReviewRepository interface {
	CreateForReservation(ctx context.Context, rv *domain.Review, reservationID int64) error
	GetByPortfolioID(ctx context.Context, portfolioID int64) ([]domain.Review, error)
	GetByModelID(ctx context.Context, modelID int64) ([]domain.Review, error)
}
