package repository

import (
	"context"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

// GetByIDForModel resolves a reservation scoped to its owning model.
// A reservation belonging to another model reads as not found, which is
// the ownership check for review creation.
func (r *ReservationRepository) GetByIDForModel(ctx context.Context, id, modelID int64) (*domain.Reservation, error) {
	var rv domain.Reservation
	err := r.db.WithContext(ctx).
		Where("id = ? AND model_id = ?", id, modelID).
		First(&rv).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReservationRepository) GetByModelID(ctx context.Context, modelID int64) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// GetByArtistID returns every reservation whose portfolio belongs to
// the artist.
func (r *ReservationRepository) GetByArtistID(ctx context.Context, artistID int64) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Joins("JOIN portfolios ON portfolios.id = reservations.portfolio_id").
		Where("portfolios.artist_id = ?", artistID).
		Order("reservations.id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
