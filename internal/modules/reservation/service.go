package reservation

import (
	"context"
	"errors"
	"time"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	models       ModelRepository
	artists      ArtistRepository
	portfolios   PortfolioRepository
	reservations ReservationRepository
}

func NewService(
	models ModelRepository,
	artists ArtistRepository,
	portfolios PortfolioRepository,
	reservations ReservationRepository,
) *Service {
	return &Service{
		models:       models,
		artists:      artists,
		portfolios:   portfolios,
		reservations: reservations,
	}
}

// Create books a model against a portfolio. Status starts at EXPECTED
// and has_review at false. No slot-conflict check is performed; two
// reservations for the same date and time are both accepted.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error) {
	if _, err := time.Parse("2006-01-02", req.ReservationDate); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.ReservationTime); err != nil {
		return nil, ErrValidation
	}

	if _, err := s.models.GetByID(ctx, req.ModelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	if _, err := s.portfolios.GetByID(ctx, req.PortfolioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}

	rv := &domain.Reservation{
		ModelID:         req.ModelID,
		PortfolioID:     req.PortfolioID,
		Status:          domain.ReservationExpected,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		HasReview:       false,
	}

	if err := s.reservations.Create(ctx, rv); err != nil {
		return nil, err
	}

	resp := toReservationResponse(rv)
	return &resp, nil
}

// UpdateStatus overwrites the reservation status unconditionally once
// the value parses against the enum. Regressions from COMPLETE are not
// guarded against; this mirrors current behavior.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req UpdateStatusRequest) error {
	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		return ErrInvalidStatus
	}

	if err := s.reservations.UpdateStatus(ctx, reservationID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListByArtist(ctx context.Context, artistID int64) ([]ReservationResponse, error) {
	if _, err := s.artists.GetByID(ctx, artistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	rows, err := s.reservations.GetByArtistID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return toReservationResponses(rows), nil
}

func (s *Service) ListByModel(ctx context.Context, modelID int64) ([]ReservationResponse, error) {
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	rows, err := s.reservations.GetByModelID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return toReservationResponses(rows), nil
}
