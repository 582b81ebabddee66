package favorite

import (
	"context"
	"errors"

	"makeupshop/internal/domain"
	"makeupshop/internal/pkg/pagination"
	"makeupshop/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	models             ModelRepository
	artists            ArtistRepository
	portfolios         PortfolioRepository
	favoriteArtists    FavoriteArtistRepository
	favoritePortfolios FavoritePortfolioRepository
}

func NewService(
	models ModelRepository,
	artists ArtistRepository,
	portfolios PortfolioRepository,
	favoriteArtists FavoriteArtistRepository,
	favoritePortfolios FavoritePortfolioRepository,
) *Service {
	return &Service{
		models:             models,
		artists:            artists,
		portfolios:         portfolios,
		favoriteArtists:    favoriteArtists,
		favoritePortfolios: favoritePortfolios,
	}
}

func (s *Service) resolveModel(ctx context.Context, modelID int64) (*domain.Model, error) {
	m, err := s.models.GetByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) resolveArtist(ctx context.Context, artistID int64) (*domain.Artist, error) {
	a, err := s.artists.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) resolvePortfolio(ctx context.Context, portfolioID int64) (*domain.Portfolio, error) {
	p, err := s.portfolios.GetByID(ctx, portfolioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return p, nil
}

// AddArtist saves an artist to a model's favorites. The existence query
// catches the common duplicate; the unique index underneath catches the
// concurrent one.
func (s *Service) AddArtist(ctx context.Context, modelID, artistID int64) error {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return err
	}
	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return err
	}

	exists, err := s.favoriteArtists.Exists(ctx, model.ID, artist.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorited
	}

	f := &domain.FavoriteArtist{ModelID: model.ID, ArtistID: artist.ID}
	if err := s.favoriteArtists.Add(ctx, f); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (s *Service) RemoveArtist(ctx context.Context, modelID, artistID int64) error {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return err
	}
	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return err
	}

	if err := s.favoriteArtists.Remove(ctx, model.ID, artist.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// ListArtists pages the model's favorite artists and projects each
// entry. A favorite whose artist no longer resolves fails the whole
// listing; there is no silent skipping.
func (s *Service) ListArtists(ctx context.Context, modelID int64, page int) (*pagination.Page[ArtistSummary], error) {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteArtists.GetByModelID(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	window := pagination.Paginate(favorites, page)
	content := make([]ArtistSummary, 0, len(window.Items))
	for _, f := range window.Items {
		artist, err := s.resolveArtist(ctx, f.ArtistID)
		if err != nil {
			return nil, err
		}
		content = append(content, toArtistSummary(artist))
	}

	out := pagination.New(content, window.TotalElements, window.Page)
	return &out, nil
}

func (s *Service) AddPortfolio(ctx context.Context, modelID, portfolioID int64) error {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return err
	}
	portfolio, err := s.resolvePortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}

	exists, err := s.favoritePortfolios.Exists(ctx, model.ID, portfolio.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorited
	}

	f := &domain.FavoritePortfolio{ModelID: model.ID, PortfolioID: portfolio.ID}
	if err := s.favoritePortfolios.Add(ctx, f); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (s *Service) RemovePortfolio(ctx context.Context, modelID, portfolioID int64) error {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return err
	}
	portfolio, err := s.resolvePortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}

	if err := s.favoritePortfolios.Remove(ctx, model.ID, portfolio.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListPortfolios(ctx context.Context, modelID int64, page int) (*pagination.Page[PortfolioSummary], error) {
	model, err := s.resolveModel(ctx, modelID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoritePortfolios.GetByModelID(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	window := pagination.Paginate(favorites, page)
	content := make([]PortfolioSummary, 0, len(window.Items))
	for _, f := range window.Items {
		portfolio, err := s.resolvePortfolio(ctx, f.PortfolioID)
		if err != nil {
			return nil, err
		}
		content = append(content, toPortfolioSummary(portfolio))
	}

	out := pagination.New(content, window.TotalElements, window.Page)
	return &out, nil
}
