package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

// The two favorite repositories run the same protocol for their target
// kind. Uniqueness is enforced twice: an existence query in the service
// and the composite unique index underneath, so concurrent adds cannot
// both commit.

type FavoriteArtistRepository struct {
	db *gorm.DB
}

func NewFavoriteArtistRepository(db *gorm.DB) *FavoriteArtistRepository {
	return &FavoriteArtistRepository{db: db}
}

func (r *FavoriteArtistRepository) Add(ctx context.Context, f *domain.FavoriteArtist) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteArtistRepository) Exists(ctx context.Context, modelID, artistID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteArtist{}).
		Where("model_id = ? AND artist_id = ?", modelID, artistID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteArtistRepository) Remove(ctx context.Context, modelID, artistID int64) error {
	tx := r.db.WithContext(ctx).
		Where("model_id = ? AND artist_id = ?", modelID, artistID).
		Delete(&domain.FavoriteArtist{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteArtistRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.FavoriteArtist, error) {
	var rows []domain.FavoriteArtist
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

type FavoritePortfolioRepository struct {
	db *gorm.DB
}

func NewFavoritePortfolioRepository(db *gorm.DB) *FavoritePortfolioRepository {
	return &FavoritePortfolioRepository{db: db}
}

func (r *FavoritePortfolioRepository) Add(ctx context.Context, f *domain.FavoritePortfolio) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoritePortfolioRepository) Exists(ctx context.Context, modelID, portfolioID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoritePortfolio{}).
		Where("model_id = ? AND portfolio_id = ?", modelID, portfolioID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoritePortfolioRepository) Remove(ctx context.Context, modelID, portfolioID int64) error {
	tx := r.db.WithContext(ctx).
		Where("model_id = ? AND portfolio_id = ?", modelID, portfolioID).
		Delete(&domain.FavoritePortfolio{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoritePortfolioRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.FavoritePortfolio, error) {
	var rows []domain.FavoritePortfolio
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
