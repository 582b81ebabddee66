package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var a domain.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) Update(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Save(a).Error
}
