package repository

import (
	"context"
	"fmt"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateForReservation commits a review and its side effects as one
// transaction: the review row (with its owned images), the reservation's
// has_review flip, and the portfolio's recomputed average_stars. The
// flip is guarded with has_review = false so a concurrent create rolls
// the whole thing back with ErrReviewFlagTaken.
func (r *ReviewRepository) CreateForReservation(ctx context.Context, rv *domain.Review, reservationID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Reservation{}).
			Where("id = ? AND has_review = ?", reservationID, false).
			Update("has_review", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrReviewFlagTaken
		}

		var avg float64
		err := tx.Model(&domain.Review{}).
			Where("portfolio_id = ?", rv.PortfolioID).
			Select("COALESCE(AVG(star), 0)").
			Scan(&avg).Error
		if err != nil {
			return err
		}

		return tx.Model(&domain.Portfolio{}).
			Where("id = ?", rv.PortfolioID).
			Update("average_stars", fmt.Sprintf("%.2f", avg)).Error
	})
}

func (r *ReviewRepository) GetByPortfolioID(ctx context.Context, portfolioID int64) ([]domain.Review, error) {
	var rows []domain.Review
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Preload("Images").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.Review, error) {
	var rows []domain.Review
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Preload("Images").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
