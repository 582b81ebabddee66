package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type PortfolioImageRepository struct {
	db *gorm.DB
}

func NewPortfolioImageRepository(db *gorm.DB) *PortfolioImageRepository {
	return &PortfolioImageRepository{db: db}
}

// GetByID resolves an image for ownership validation. The writes
// themselves go through PortfolioRepository.Update so they commit with
// the rest of the portfolio edit.
func (r *PortfolioImageRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioImage, error) {
	var img domain.PortfolioImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}
