package reservation

import (
	"context"

	"makeupshop/internal/domain"
)

type ModelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Model, error)
}

type ArtistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
}

type PortfolioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Portfolio, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rv *domain.Reservation) error
	GetByModelID(ctx context.Context, modelID int64) ([]domain.Reservation, error)
	GetByArtistID(ctx context.Context, artistID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}
