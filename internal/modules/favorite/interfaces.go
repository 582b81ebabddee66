package favorite

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

type FavoriteArtistRepository interface {
	Add(ctx context.Context, f *domain.FavoriteArtist) error
	Exists(ctx context.Context, modelID, artistID int64) (bool, error)
	Remove(ctx context.Context, modelID, artistID int64) error
	GetByModelID(ctx context.Context, modelID int64) ([]domain.FavoriteArtist, error)
}

type FavoritePortfolioRepository interface {
	Add(ctx context.Context, f *domain.FavoritePortfolio) error
	Exists(ctx context.Context, modelID, portfolioID int64) (bool, error)
	Remove(ctx context.Context, modelID, portfolioID int64) error
	GetByModelID(ctx context.Context, modelID int64) ([]domain.FavoritePortfolio, error)
}
