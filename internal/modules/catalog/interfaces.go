package catalog

import (
	"context"

	"makeupshop/internal/domain"
	"makeupshop/internal/repository"
)

type ArtistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, p *domain.Portfolio) error
	GetByID(ctx context.Context, id int64) (*domain.Portfolio, error)
	ExistsByMakeupName(ctx context.Context, name string) (bool, error)
	GetByArtistID(ctx context.Context, artistID int64) ([]domain.Portfolio, error)
	Update(ctx context.Context, p *domain.Portfolio, edits []repository.PortfolioImageEdit) error
	Search(ctx context.Context, query, order string, limit, offset int) ([]domain.Portfolio, int64, error)
	FindByCategory(ctx context.Context, category domain.Category, order string, limit, offset int) ([]domain.Portfolio, int64, error)
	FindByArtistID(ctx context.Context, artistID int64, order string, limit, offset int) ([]domain.Portfolio, int64, error)
	FindAllNotBlocked(ctx context.Context, order string, limit, offset int) ([]domain.Portfolio, int64, error)
}

type PortfolioImageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PortfolioImage, error)
}
