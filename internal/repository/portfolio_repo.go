package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.Portfolio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	var p domain.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Images").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepository) ExistsByMakeupName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Portfolio{}).
		Where("makeup_name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// GetByArtistID returns the artist's full catalog in insertion order,
// blocked entries included; visibility filtering is the service's call.
func (r *PortfolioRepository) GetByArtistID(ctx context.Context, artistID int64) ([]domain.Portfolio, error) {
	var rows []domain.Portfolio
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Preload("Images").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// PortfolioImageEdit either deletes an owned image row or replaces its
// src.
type PortfolioImageEdit struct {
	ImageID int64
	Src     string
	Delete  bool
}

// Update commits the portfolio's field changes and its image edits as
// one transaction. Every edit is scoped to the portfolio, so an image
// id from another portfolio (or one removed concurrently) rolls the
// whole update back with gorm.ErrRecordNotFound.
func (r *PortfolioRepository) Update(ctx context.Context, p *domain.Portfolio, edits []PortfolioImageEdit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, edit := range edits {
			var res *gorm.DB
			if edit.Delete {
				res = tx.
					Where("id = ? AND portfolio_id = ?", edit.ImageID, p.ID).
					Delete(&domain.PortfolioImage{})
			} else {
				res = tx.Model(&domain.PortfolioImage{}).
					Where("id = ? AND portfolio_id = ?", edit.ImageID, p.ID).
					Update("src", edit.Src)
			}
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		return tx.Omit("Images").Save(p).Error
	})
}

// Search runs a text match over makeup_name and info, restricted to
// non-blocked portfolios.
func (r *PortfolioRepository) Search(ctx context.Context, query, order string, limit, offset int) ([]domain.Portfolio, int64, error) {
	pattern := "%" + query + "%"
	q := r.db.WithContext(ctx).
		Model(&domain.Portfolio{}).
		Where("is_block = ?", false).
		Where("makeup_name LIKE ? OR info LIKE ?", pattern, pattern)
	return r.page(q, order, limit, offset)
}

func (r *PortfolioRepository) FindByCategory(ctx context.Context, category domain.Category, order string, limit, offset int) ([]domain.Portfolio, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Portfolio{}).
		Where("is_block = ? AND category = ?", false, category)
	return r.page(q, order, limit, offset)
}

func (r *PortfolioRepository) FindByArtistID(ctx context.Context, artistID int64, order string, limit, offset int) ([]domain.Portfolio, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Portfolio{}).
		Where("is_block = ? AND artist_id = ?", false, artistID)
	return r.page(q, order, limit, offset)
}

func (r *PortfolioRepository) FindAllNotBlocked(ctx context.Context, order string, limit, offset int) ([]domain.Portfolio, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Portfolio{}).
		Where("is_block = ?", false)
	return r.page(q, order, limit, offset)
}

// page applies count-then-find so callers get the window plus the full
// result-set size. The order clause always ends with id ASC so equal
// keys stay stable across calls.
func (r *PortfolioRepository) page(q *gorm.DB, order string, limit, offset int) ([]domain.Portfolio, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Portfolio
	err := q.
		Preload("Images").
		Order(order + ", id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}
