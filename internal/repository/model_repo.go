package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) Create(ctx context.Context, m *domain.Model) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ModelRepository) GetByID(ctx context.Context, id int64) (*domain.Model, error) {
	var m domain.Model
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModelRepository) Update(ctx context.Context, m *domain.Model) error {
	return r.db.WithContext(ctx).Save(m).Error
}
