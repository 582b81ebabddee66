package catalog

import (
	"context"
	"errors"

	"makeupshop/internal/domain"
	"makeupshop/internal/pkg/pagination"
	"makeupshop/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	artists    ArtistRepository
	portfolios PortfolioRepository
	images     PortfolioImageRepository
}

func NewService(artists ArtistRepository, portfolios PortfolioRepository, images PortfolioImageRepository) *Service {
	return &Service{artists: artists, portfolios: portfolios, images: images}
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

// Create builds a portfolio with its owned images. The makeup name is
// globally unique: checked up front, and backed by the unique index for
// concurrent creators.
func (s *Service) Create(ctx context.Context, artistID int64, req CreatePortfolioRequest) (*PortfolioResponse, error) {
	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	exists, err := s.portfolios.ExistsByMakeupName(ctx, req.MakeupName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPortfolioExists
	}

	images := make([]domain.PortfolioImage, 0, len(req.ImgSrcs))
	for _, src := range req.ImgSrcs {
		images = append(images, domain.PortfolioImage{Src: src})
	}

	p := &domain.Portfolio{
		ArtistID:     artist.ID,
		Category:     category,
		MakeupName:   req.MakeupName,
		Info:         req.Info,
		Price:        req.Price,
		AverageStars: "0.00",
		IsBlock:      false,
		Images:       images,
	}

	if err := s.portfolios.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrPortfolioExists
		}
		return nil, err
	}

	resp := toPortfolioResponse(p)
	return &resp, nil
}

// ListByArtist pages the artist's own catalog in insertion order with
// blocked entries removed.
func (s *Service) ListByArtist(ctx context.Context, artistID int64, page int) (*pagination.Page[PortfolioResponse], error) {
	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	rows, err := s.portfolios.GetByArtistID(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Portfolio, 0, len(rows))
	for _, p := range rows {
		if !p.IsBlock {
			visible = append(visible, p)
		}
	}

	window := pagination.Paginate(visible, page)
	out := pagination.New(toPortfolioResponses(window.Items), window.TotalElements, window.Page)
	return &out, nil
}

// GetDetails resolves a portfolio by id. A blocked portfolio is still
// resolvable but surfaces as its own error, not a not-found.
func (s *Service) GetDetails(ctx context.Context, portfolioID int64) (*domain.Portfolio, error) {
	p, err := s.portfolios.GetByID(ctx, portfolioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	if p.IsBlock {
		return nil, ErrPortfolioBlocked
	}
	return p, nil
}

func (s *Service) Details(ctx context.Context, portfolioID int64) (*PortfolioResponse, error) {
	p, err := s.GetDetails(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	resp := toPortfolioResponse(p)
	return &resp, nil
}

// SearchByText matches portfolio name and description. Unlike the other
// listings, an empty result set is an error here.
func (s *Service) SearchByText(ctx context.Context, query string, page int, sortKey string) (*pagination.Page[PortfolioResponse], error) {
	order, err := pagination.OrderClause(sortKey)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.portfolios.Search(ctx, query, order, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrSearchNotFound
	}

	out := pagination.New(toPortfolioResponses(rows), total, page)
	return &out, nil
}

func (s *Service) SearchByCategory(ctx context.Context, category string, page int, sortKey string) (*pagination.Page[PortfolioResponse], error) {
	order, err := pagination.OrderClause(sortKey)
	if err != nil {
		return nil, err
	}

	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	rows, total, err := s.portfolios.FindByCategory(ctx, cat, order, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, err
	}

	out := pagination.New(toPortfolioResponses(rows), total, page)
	return &out, nil
}

func (s *Service) SearchByArtist(ctx context.Context, artistID int64, page int, sortKey string) (*pagination.Page[PortfolioResponse], error) {
	order, err := pagination.OrderClause(sortKey)
	if err != nil {
		return nil, err
	}

	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.portfolios.FindByArtistID(ctx, artist.ID, order, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, err
	}

	out := pagination.New(toPortfolioResponses(rows), total, page)
	return &out, nil
}

func (s *Service) SearchAll(ctx context.Context, page int, sortKey string) (*pagination.Page[PortfolioResponse], error) {
	order, err := pagination.OrderClause(sortKey)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.portfolios.FindAllNotBlocked(ctx, order, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, err
	}

	out := pagination.New(toPortfolioResponses(rows), total, page)
	return &out, nil
}

// RecommendReview returns the best-rated non-blocked portfolios.
func (s *Service) RecommendReview(ctx context.Context) ([]PortfolioBrief, error) {
	return s.recommend(ctx, "review")
}

// RecommendRecent returns the newest non-blocked portfolios.
func (s *Service) RecommendRecent(ctx context.Context) ([]PortfolioBrief, error) {
	return s.recommend(ctx, "recent")
}

func (s *Service) recommend(ctx context.Context, sortKey string) ([]PortfolioBrief, error) {
	order, err := pagination.OrderClause(sortKey)
	if err != nil {
		return nil, err
	}
	rows, _, err := s.portfolios.FindAllNotBlocked(ctx, order, pagination.PageSize, 0)
	if err != nil {
		return nil, err
	}
	return toPortfolioBriefs(rows), nil
}

// Update edits a portfolio the artist owns. Resolution goes through
// GetDetails, so a blocked portfolio rejects its own update. Image edits
// are validated up front and then committed together with the field
// updates in one repository transaction; a failing rename cannot leave
// an image delete behind.
func (s *Service) Update(ctx context.Context, artistID, portfolioID int64, req UpdatePortfolioRequest) error {
	artist, err := s.resolveArtist(ctx, artistID)
	if err != nil {
		return err
	}

	p, err := s.GetDetails(ctx, portfolioID)
	if err != nil {
		return err
	}

	if p.ArtistID != artist.ID {
		return ErrNotAuthorized
	}

	edits := make([]repository.PortfolioImageEdit, 0, len(req.ImageEdits))
	for _, edit := range req.ImageEdits {
		img, err := s.images.GetByID(ctx, edit.ImageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrImageNotFound
			}
			return err
		}
		// an image id from another portfolio reads as not found
		if img.PortfolioID != p.ID {
			return ErrImageNotFound
		}

		if !edit.Delete && edit.Src == "" {
			continue
		}
		edits = append(edits, repository.PortfolioImageEdit{
			ImageID: img.ID,
			Src:     edit.Src,
			Delete:  edit.Delete,
		})
	}

	if req.Category != nil {
		category, err := domain.ParseCategory(*req.Category)
		if err != nil {
			return ErrInvalidCategory
		}
		p.Category = category
	}
	if req.MakeupName != nil {
		p.MakeupName = *req.MakeupName
	}
	if req.Info != nil {
		p.Info = *req.Info
	}
	if req.Price != nil {
		p.Price = *req.Price
	}

	if err := s.portfolios.Update(ctx, p, edits); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrPortfolioExists
		}
		// an image removed between validation and commit rolls the
		// transaction back
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}
